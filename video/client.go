// Package video is the client for the avatar-video vendor API: create a
// generation job, read its status, and poll until completion. This is the
// one real network integration of the server.
package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	apperrors "github.com/aigenie/genie-server/internal/errors"
	"github.com/aigenie/genie-server/internal/latency"
)

const (
	defaultBaseURL  = "https://tavusapi.com/v2"
	pollInterval    = 2 * time.Second
	maxPollAttempts = 30
)

var (
	ErrGenerationFailed = errors.New("video generation failed")
	ErrPollTimeout      = errors.New("video generation timed out")
)

// Status values reported by the vendor.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// CreateRequest describes a video generation job.
type CreateRequest struct {
	ReplicaID     string `json:"replica_id"`
	Script        string `json:"script"`
	BackgroundURL string `json:"background_url,omitempty"`
	VideoName     string `json:"video_name,omitempty"`
}

// JobStatus is the vendor's view of a generation job.
type JobStatus struct {
	VideoID     string `json:"video_id"`
	Status      string `json:"status"`
	DownloadURL string `json:"download_url,omitempty"`
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	maxAttempts  int
	sleep        latency.Sleeper
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

func WithMaxAttempts(n int) Option {
	return func(c *Client) { c.maxAttempts = n }
}

func WithSleeper(sleep latency.Sleeper) Option {
	return func(c *Client) { c.sleep = sleep }
}

func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      defaultBaseURL,
		apiKey:       apiKey,
		pollInterval: pollInterval,
		maxAttempts:  maxPollAttempts,
		sleep:        latency.Wait,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// CreateVideo submits a generation job and returns its identifier.
func (c *Client) CreateVideo(ctx context.Context, req CreateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "[CreateVideo] marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/videos", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "[CreateVideo] build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	var created JobStatus
	if err := c.do(httpReq, &created); err != nil {
		return "", errors.Wrap(err, "[CreateVideo]")
	}
	return created.VideoID, nil
}

// Status reads the current state of a generation job.
func (c *Client) Status(ctx context.Context, videoID string) (*JobStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos/"+videoID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Status] build request")
	}
	httpReq.Header.Set("x-api-key", c.apiKey)

	var status JobStatus
	if err := c.do(httpReq, &status); err != nil {
		return nil, errors.Wrap(err, "[Status]")
	}
	return &status, nil
}

// PollCompletion polls the job at a fixed interval until it completes,
// returning the download reference. A failed job surfaces
// ErrGenerationFailed; exceeding the attempt budget surfaces
// ErrPollTimeout.
func (c *Client) PollCompletion(ctx context.Context, videoID string) (string, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		status, err := c.Status(ctx, videoID)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case StatusCompleted:
			return status.DownloadURL, nil
		case StatusFailed:
			return "", ErrGenerationFailed
		}

		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %w after %d attempts", apperrors.ErrRemoteService, ErrPollTimeout, c.maxAttempts)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrRemoteService, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.Wrapf(apperrors.ErrRemoteService, "vendor api status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(apperrors.ErrRemoteService, "decode response: %v", err)
	}
	return nil
}

// VideoName derives a display name for a generation job.
func VideoName(now time.Time) string {
	return fmt.Sprintf("AI Genie Response - %d", now.UnixMilli())
}
