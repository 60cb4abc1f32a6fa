package server

import (
	"net/http"

	"github.com/aigenie/genie-server/oneshot"
)

func (s *Server) OneShotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req oneshot.Request
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UserID == "" {
			req.UserID = userIDFromContext(r.Context())
		}

		resp, err := s.services.OneShot.Process(r.Context(), req)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) OneShotHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := s.services.OneShot.History(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}

func (s *Server) OneShotStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.services.OneShot.Stats(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
