package video_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/aigenie/genie-server/internal/errors"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/video"
)

const testAPIKey = "test-api-key"

func newTestClient(t *testing.T, handler http.Handler) *video.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return video.NewClient(testAPIKey,
		video.WithBaseURL(srv.URL),
		video.WithHTTPClient(srv.Client()),
		video.WithSleeper(latency.None),
	)
}

func TestCreateVideo_SubmitsJob(t *testing.T) {
	var captured video.CreateRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/videos", r.URL.Path)
		require.Equal(t, testAPIKey, r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(video.JobStatus{VideoID: "vid_123", Status: video.StatusQueued})
	}))

	videoID, err := client.CreateVideo(context.Background(), video.CreateRequest{
		ReplicaID: "replica_1",
		Script:    "Greetings, seeker.",
		VideoName: "AI Genie Response - 1",
	})
	require.NoError(t, err)
	require.Equal(t, "vid_123", videoID)
	require.Equal(t, "replica_1", captured.ReplicaID)
	require.Equal(t, "Greetings, seeker.", captured.Script)
}

func TestCreateVideo_VendorError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))

	_, err := client.CreateVideo(context.Background(), video.CreateRequest{ReplicaID: "r", Script: "s"})
	require.ErrorIs(t, err, apperrors.ErrRemoteService)
}

func TestStatus_ReadsJob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/videos/vid_123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(video.JobStatus{VideoID: "vid_123", Status: video.StatusProcessing})
	}))

	status, err := client.Status(context.Background(), "vid_123")
	require.NoError(t, err)
	require.Equal(t, video.StatusProcessing, status.Status)
}

func TestPollCompletion_ReturnsDownloadURL(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := video.JobStatus{VideoID: "vid_123", Status: video.StatusProcessing}
		if calls.Add(1) >= 3 {
			status.Status = video.StatusCompleted
			status.DownloadURL = "https://cdn.example.com/vid_123.mp4"
		}
		_ = json.NewEncoder(w).Encode(status)
	}))

	url, err := client.PollCompletion(context.Background(), "vid_123")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/vid_123.mp4", url)
	require.Equal(t, int32(3), calls.Load())
}

func TestPollCompletion_FailedJob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(video.JobStatus{VideoID: "vid_123", Status: video.StatusFailed})
	}))

	_, err := client.PollCompletion(context.Background(), "vid_123")
	require.ErrorIs(t, err, video.ErrGenerationFailed)
}

func TestPollCompletion_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(video.JobStatus{VideoID: "vid_123", Status: video.StatusProcessing})
	}))
	t.Cleanup(srv.Close)

	client := video.NewClient(testAPIKey,
		video.WithBaseURL(srv.URL),
		video.WithHTTPClient(srv.Client()),
		video.WithSleeper(latency.None),
		video.WithMaxAttempts(5),
	)

	_, err := client.PollCompletion(context.Background(), "vid_123")
	require.ErrorIs(t, err, video.ErrPollTimeout)
	require.ErrorIs(t, err, apperrors.ErrRemoteService)
	require.Equal(t, int32(5), calls.Load())
}
