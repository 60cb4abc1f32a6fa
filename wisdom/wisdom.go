// Package wisdom implements the crowdsourced wisdom ledger. It is
// presented to clients as blockchain storage; the "chain" is one JSON
// array in the key-value store, appended and vote-updated in place.
package wisdom

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/aigenie/genie-server/internal/ident"
	"github.com/aigenie/genie-server/store"
)

const ledgerKey = "blockchain-wisdom"

var ErrRecordNotFound = errors.New("wisdom record not found")

// Record is one entry of the wisdom ledger.
type Record struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
	Votes     int    `json:"votes"`
	Anonymous bool   `json:"anonymous"`
}

type Service struct {
	store   store.Store
	nowTime func() time.Time
	rand    *rand.Rand
	lock    sync.Mutex
}

type Option func(*Service)

func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Service) { s.nowTime = nowFunc }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(st store.Store, options ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("[wisdom.NewService] store is required")
	}
	svc := &Service{store: st, nowTime: time.Now, rand: ident.NewSource()}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// Add appends a new record to the ledger and returns it.
func (s *Service) Add(ctx context.Context, content, category string, anonymous bool) (*Record, error) {
	if content == "" {
		return nil, errors.New("[Add] content is required")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Add] load")
	}

	now := s.nowTime()
	record := Record{
		ID:        ident.New(s.rand, now, "wisdom"),
		Content:   content,
		Category:  category,
		Timestamp: now.UnixMilli(),
		Anonymous: anonymous,
	}

	records = append(records, record)
	if err := s.save(ctx, records); err != nil {
		return nil, errors.Wrap(err, "[Add] save")
	}
	return &record, nil
}

// List returns every record in insertion order. An absent ledger is an
// empty one.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[List] load")
	}
	return records, nil
}

// Vote increments the vote count of the identified record and returns the
// updated record.
func (s *Service) Vote(ctx context.Context, id string) (*Record, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Vote] load")
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Votes++
		if err := s.save(ctx, records); err != nil {
			return nil, errors.Wrap(err, "[Vote] save")
		}
		return &records[i], nil
	}
	return nil, ErrRecordNotFound
}

func (s *Service) load(ctx context.Context) ([]Record, error) {
	raw, ok, err := s.store.Get(ctx, ledgerKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []Record{}, nil
	}
	return records, nil
}

func (s *Service) save(ctx context.Context, records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, ledgerKey, string(data))
}
