package server

import (
	"net/http"
	"time"
)

// --- Wisdom ledger ---

type addWisdomRequest struct {
	Content   string `json:"content"`
	Category  string `json:"category"`
	Anonymous bool   `json:"anonymous"`
}

func (s *Server) AddWisdomHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addWisdomRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeJSONError(w, "invalid_request", "content is required", http.StatusBadRequest)
			return
		}

		record, err := s.services.Wisdom.Add(r.Context(), req.Content, req.Category, req.Anonymous)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}

func (s *Server) ListWisdomHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.services.Wisdom.List(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func (s *Server) VoteWisdomHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := s.services.Wisdom.Vote(r.Context(), r.PathValue("id"))
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// --- Goal tracker ---

type addGoalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func (s *Server) AddGoalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addGoalRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		goal, err := s.services.Goals.Add(r.Context(), req.Title, req.Description, req.Category, req.Deadline)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

func (s *Server) ListGoalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.services.Goals.List(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

type updateGoalRequest struct {
	Progress int `json:"progress"`
}

func (s *Server) UpdateGoalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateGoalRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		goal, err := s.services.Goals.SetProgress(r.Context(), r.PathValue("id"), req.Progress)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func (s *Server) DeleteGoalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Goals.Delete(r.Context(), r.PathValue("id")); err != nil {
			s.respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) GoalsSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.services.Goals.Summary(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
