package server

import (
	"net/http"
	"time"

	"github.com/aigenie/genie-server/video"
)

type createVideoRequest struct {
	Script        string `json:"script"`
	ReplicaID     string `json:"replica_id,omitempty"`
	BackgroundURL string `json:"background_url,omitempty"`
	VideoName     string `json:"video_name,omitempty"`
}

type createVideoResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
}

func (s *Server) CreateVideoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services.Video == nil {
			writeJSONError(w, "not_configured", "video generation is not configured", http.StatusServiceUnavailable)
			return
		}

		var req createVideoRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Script == "" {
			writeJSONError(w, "invalid_request", "script is required", http.StatusBadRequest)
			return
		}
		if req.ReplicaID == "" {
			req.ReplicaID = s.config.GetVideoReplicaID()
		}
		if req.BackgroundURL == "" {
			req.BackgroundURL = s.config.GetVideoBackgroundURL()
		}
		if req.VideoName == "" {
			req.VideoName = video.VideoName(time.Now())
		}

		videoID, err := s.services.Video.CreateVideo(r.Context(), video.CreateRequest{
			ReplicaID:     req.ReplicaID,
			Script:        req.Script,
			BackgroundURL: req.BackgroundURL,
			VideoName:     req.VideoName,
		})
		if err != nil {
			s.respondServiceError(w, err)
			return
		}

		s.logger.Info().Str("videoID", videoID).Msg("video generation started")
		writeJSON(w, http.StatusAccepted, createVideoResponse{VideoID: videoID, Status: video.StatusQueued})
	}
}

func (s *Server) VideoStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services.Video == nil {
			writeJSONError(w, "not_configured", "video generation is not configured", http.StatusServiceUnavailable)
			return
		}

		status, err := s.services.Video.Status(r.Context(), r.PathValue("id"))
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}
