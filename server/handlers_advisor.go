package server

import (
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		reply, err := s.services.Advisor.Reply(r.Context(), req.Message)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
	}
}

type chaosRequest struct {
	Decision string `json:"decision"`
}

func (s *Server) ChaosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chaosRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := s.services.Advisor.Chaos(r.Context(), req.Decision)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
