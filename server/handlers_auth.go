package server

import (
	"net/http"

	"github.com/aigenie/genie-server/accounts"
)

// HealthHandler reports liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "app": s.config.GetAppName()})
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// SignUpHandler registers a new account and returns the signed-in session.
func (s *Server) SignUpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signUpRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeJSONError(w, "invalid_request", "email and password are required", http.StatusBadRequest)
			return
		}

		result, err := s.services.Accounts.SignUp(r.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}

		s.logger.Info().Str("email", result.User.Email).Msg("account created")
		writeJSON(w, http.StatusCreated, result)
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInHandler authenticates an existing account.
func (s *Server) SignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeJSONError(w, "invalid_request", "email and password are required", http.StatusBadRequest)
			return
		}

		result, err := s.services.Accounts.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}

		s.logger.Info().Str("email", result.User.Email).Msg("signed in")
		writeJSON(w, http.StatusOK, result)
	}
}

// SignOutHandler clears the session state.
func (s *Server) SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Accounts.SignOut(r.Context()); err != nil {
			s.respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// CurrentUserHandler restores the signed-in identity. A missing session
// is a normal result, reported as a null user.
func (s *Server) CurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.services.Accounts.CurrentUser(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]*accounts.Account{"user": user})
	}
}

// ProfileHandler returns the current session's profile.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.services.Accounts.Profile(r.Context(), r.PathValue("id"))
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		if profile == nil {
			s.respondServiceError(w, accounts.ErrNoActiveSession)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// UpdateProfileHandler merges partial profile fields into the current
// session and directory entry.
func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var updates accounts.ProfileUpdate
		if !decodeJSON(w, r, &updates) {
			return
		}

		updated, err := s.services.Accounts.UpdateProfile(r.Context(), r.PathValue("id"), updates)
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		if updated == nil {
			s.respondServiceError(w, accounts.ErrNoActiveSession)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// DemoStatsHandler reports the registered accounts.
func (s *Server) DemoStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.services.Accounts.DirectoryStats(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// DemoResetHandler wipes all identity state.
func (s *Server) DemoResetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Accounts.ClearAll(r.Context()); err != nil {
			s.respondServiceError(w, err)
			return
		}
		s.logger.Info().Msg("demo data cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}
