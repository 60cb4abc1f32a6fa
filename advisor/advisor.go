// Package advisor selects the canned "AI" text of the conversational
// interface and the chaos-mode decision helper. Selection is a pure
// function of the injected random source; the only other effect is the
// simulated thinking delay.
package advisor

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/aigenie/genie-server/internal/ident"
	"github.com/aigenie/genie-server/internal/latency"
)

const (
	baseReplyDelay   = 1500 * time.Millisecond
	jitterReplyDelay = 1500 * time.Millisecond
	chaosDelay       = 2 * time.Second
	chaosPostCount   = 3
)

var ErrEmptyDecision = errors.New("decision is required")

// Post is one entry of the decision helper's fixed evidence pool.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Subreddit string `json:"subreddit"`
	Upvotes   int    `json:"upvotes"`
	URL       string `json:"url"`
}

// ChaosResult is the decision helper's verdict: a random sample of the
// evidence pool plus one canned suggestion.
type ChaosResult struct {
	Posts      []Post `json:"posts"`
	Suggestion string `json:"suggestion"`
}

type Service struct {
	sleep latency.Sleeper
	rand  *rand.Rand
	lock  sync.Mutex
}

type Option func(*Service)

func WithSleeper(sleep latency.Sleeper) Option {
	return func(s *Service) { s.sleep = sleep }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(options ...Option) *Service {
	svc := &Service{sleep: latency.Wait, rand: ident.NewSource()}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

// Reply returns one canned genie reply after the simulated thinking delay
// of 1.5-3 seconds. The message content does not influence selection.
func (s *Service) Reply(ctx context.Context, _ string) (string, error) {
	s.lock.Lock()
	delay := baseReplyDelay + time.Duration(s.rand.Int63n(int64(jitterReplyDelay)))
	reply := chatReplies[s.rand.Intn(len(chatReplies))]
	s.lock.Unlock()

	if err := s.sleep(ctx, delay); err != nil {
		return "", err
	}
	return reply, nil
}

// Chaos resolves a decision by sampling three posts from the evidence
// pool and picking one canned suggestion.
func (s *Service) Chaos(ctx context.Context, decision string) (*ChaosResult, error) {
	if decision == "" {
		return nil, ErrEmptyDecision
	}

	if err := s.sleep(ctx, chaosDelay); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	shuffled := make([]Post, len(chaosPosts))
	copy(shuffled, chaosPosts)
	s.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &ChaosResult{
		Posts:      shuffled[:chaosPostCount],
		Suggestion: chaosSuggestions[s.rand.Intn(len(chaosSuggestions))],
	}, nil
}
