// Package oneshot implements the one-shot advice generator: a single
// prompt in, one canned response out, with optional simulated voice and
// video attachments. Responses are logged to the key-value store, capped
// at the most recent 50 entries.
package oneshot

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/aigenie/genie-server/internal/ident"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/store"
)

const historyKey = "oneshot_responses"

// historyCap bounds the response log; the oldest entries are discarded
// first once the cap is reached.
const historyCap = 50

const (
	baseResponseDelay   = 1 * time.Second
	jitterResponseDelay = 2 * time.Second
	voiceDelay          = 2 * time.Second
	videoDelay          = 5 * time.Second
)

var ErrEmptyPrompt = errors.New("prompt is required")

// Request is a one-shot advice request.
type Request struct {
	Prompt       string `json:"prompt"`
	Context      string `json:"context,omitempty"`
	UserID       string `json:"userId,omitempty"`
	IncludeVoice bool   `json:"includeVoice,omitempty"`
	IncludeVideo bool   `json:"includeVideo,omitempty"`
}

// Response is one generated advice entry as persisted in the log.
type Response struct {
	ID             string    `json:"id"`
	Response       string    `json:"response"`
	AudioURL       string    `json:"audioUrl,omitempty"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	ProcessingTime int64     `json:"processingTime"` // milliseconds
}

// UsageStats summarises the response log.
type UsageStats struct {
	TotalRequests         int        `json:"totalRequests"`
	AverageProcessingTime float64    `json:"averageProcessingTime"`
	VoiceRequests         int        `json:"voiceRequests"`
	VideoRequests         int        `json:"videoRequests"`
	LastUsed              *time.Time `json:"lastUsed"`
}

type Service struct {
	store   store.Store
	nowTime func() time.Time
	sleep   latency.Sleeper
	rand    *rand.Rand
	lock    sync.Mutex
}

type Option func(*Service)

func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Service) { s.nowTime = nowFunc }
}

func WithSleeper(sleep latency.Sleeper) Option {
	return func(s *Service) { s.sleep = sleep }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(st store.Store, options ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("[oneshot.NewService] store is required")
	}
	svc := &Service{store: st, nowTime: time.Now, sleep: latency.Wait, rand: ident.NewSource()}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// Process generates a response for the request, attaches the requested
// simulated media, appends it to the log, and returns it.
func (s *Service) Process(ctx context.Context, req Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, ErrEmptyPrompt
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	start := s.nowTime()

	text, err := s.generate(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	resp := Response{
		ID:        ident.New(s.rand, start, "oneshot"),
		Response:  text,
		Timestamp: start,
	}

	if req.IncludeVoice {
		if err := s.sleep(ctx, voiceDelay); err != nil {
			return nil, err
		}
		resp.AudioURL = fmt.Sprintf("data:audio/mpeg;base64,mock_audio_data_%d", s.nowTime().UnixMilli())
	}
	if req.IncludeVideo {
		if err := s.sleep(ctx, videoDelay); err != nil {
			return nil, err
		}
		resp.VideoURL = fmt.Sprintf("https://mock-video-url.com/oneshot_%d.mp4", s.nowTime().UnixMilli())
	}

	resp.ProcessingTime = s.nowTime().Sub(start).Milliseconds()

	if err := s.appendHistory(ctx, resp); err != nil {
		return nil, errors.Wrap(err, "[Process] appendHistory")
	}
	return &resp, nil
}

// History returns the logged responses, oldest first. An absent log is an
// empty one.
func (s *Service) History(ctx context.Context) ([]Response, error) {
	history, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[History] load")
	}
	return history, nil
}

// Stats summarises the response log for the analytics view.
func (s *Service) Stats(ctx context.Context) (*UsageStats, error) {
	history, err := s.load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[Stats] load")
	}

	stats := &UsageStats{TotalRequests: len(history)}
	if len(history) == 0 {
		return stats, nil
	}

	var totalMillis int64
	for _, entry := range history {
		totalMillis += entry.ProcessingTime
		if entry.AudioURL != "" {
			stats.VoiceRequests++
		}
		if entry.VideoURL != "" {
			stats.VideoRequests++
		}
	}
	stats.AverageProcessingTime = float64(totalMillis) / float64(len(history))
	last := history[len(history)-1].Timestamp
	stats.LastUsed = &last

	return stats, nil
}

// generate picks one of the canned templates and simulates the model
// round-trip of 1-3 seconds.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	delay := baseResponseDelay + time.Duration(s.rand.Int63n(int64(jitterResponseDelay)))
	if err := s.sleep(ctx, delay); err != nil {
		return "", err
	}
	template := adviceTemplates[s.rand.Intn(len(adviceTemplates))]
	return fmt.Sprintf(template, prompt), nil
}

func (s *Service) appendHistory(ctx context.Context, resp Response) error {
	history, err := s.load(ctx)
	if err != nil {
		return err
	}

	history = append(history, resp)
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	return s.save(ctx, history)
}

func (s *Service) load(ctx context.Context) ([]Response, error) {
	raw, ok, err := s.store.Get(ctx, historyKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Response{}, nil
	}

	var history []Response
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return []Response{}, nil
	}
	return history, nil
}

func (s *Service) save(ctx context.Context, history []Response) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, historyKey, string(data))
}
