// Package goals implements the goal tracker: simple CRUD over one JSON
// array in the key-value store, with a progress summary for the UI.
package goals

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

const goalsKey = "ai-genie-goals"

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrTitleRequired   = errors.New("goal title is required")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

// Goal is one tracked goal. Progress runs 0-100; 100 means completed.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"`
	Category    string     `json:"category"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Summary aggregates the tracked goals.
type Summary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"averageProgress"`
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
		return nil, errors.New("[goals.NewService] store is required")
	}
	svc := &Service{store: st, nowTime: time.Now, rand: ident.NewSource()}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// Add creates a new goal with zero progress.
func (s *Service) Add(ctx context.Context, title, description, category string, deadline *time.Time) (*Goal, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	goals, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Add] load")
	}

	now := s.nowTime()
	goal := Goal{
		ID:          ident.New(s.rand, now, "goal"),
		Title:       title,
		Description: description,
		Category:    category,
		Deadline:    deadline,
		CreatedAt:   now,
	}

	goals = append(goals, goal)
	if err := s.save(ctx, goals); err != nil {
		return nil, errors.Wrap(err, "[Add] save")
	}
	return &goal, nil
}

// List returns the tracked goals in insertion order.
func (s *Service) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[List] load")
	}
	return goals, nil
}

// SetProgress updates the progress of the identified goal.
func (s *Service) SetProgress(ctx context.Context, id string, progress int) (*Goal, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	goals, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[SetProgress] load")
	}

	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Progress = progress
		if err := s.save(ctx, goals); err != nil {
			return nil, errors.Wrap(err, "[SetProgress] save")
		}
		return &goals[i], nil
	}
	return nil, ErrGoalNotFound
}

// Delete removes the identified goal.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	goals, err := s.load(ctx)
	if err != nil {
		return errors.Wrap(err, "[Delete] load")
	}

	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals = append(goals[:i], goals[i+1:]...)
		return errors.Wrap(s.save(ctx, goals), "[Delete] save")
	}
	return ErrGoalNotFound
}

// Summary reports total, completed, and average progress across all goals.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	goals, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Summary] load")
	}

	summary := &Summary{Total: len(goals)}
	if len(goals) == 0 {
		return summary, nil
	}

	total := 0
	for _, goal := range goals {
		total += goal.Progress
		if goal.Progress == 100 {
			summary.Completed++
		}
	}
	summary.AverageProgress = (total + len(goals)/2) / len(goals)
	return summary, nil
}

func (s *Service) load(ctx context.Context) ([]Goal, error) {
	raw, ok, err := s.store.Get(ctx, goalsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Goal{}, nil
	}

	var goals []Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return []Goal{}, nil
	}
	return goals, nil
}

func (s *Service) save(ctx context.Context, goals []Goal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, goalsKey, string(data))
}
