package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aigenie/genie-server/accounts"
	"github.com/aigenie/genie-server/advisor"
	"github.com/aigenie/genie-server/entitlements"
	"github.com/aigenie/genie-server/goals"
	apperrors "github.com/aigenie/genie-server/internal/errors"
	"github.com/aigenie/genie-server/oneshot"
	"github.com/aigenie/genie-server/video"
	"github.com/aigenie/genie-server/wisdom"
)

const contentTypeJSON = "application/json; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes an API error response
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             errorCode,
		"error_description": description,
	})
}

// respondServiceError maps domain errors to HTTP responses. Anything not
// classified is an internal error; its detail is logged, not leaked.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounts.ErrDuplicateAccount):
		writeJSONError(w, "duplicate_account", err.Error(), http.StatusConflict)
	case errors.Is(err, accounts.ErrAccountNotFound):
		writeJSONError(w, "account_not_found", err.Error(), http.StatusNotFound)
	case errors.Is(err, accounts.ErrInvalidCredential):
		writeJSONError(w, "invalid_credential", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, accounts.ErrNoActiveSession):
		writeJSONError(w, "no_active_session", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, wisdom.ErrRecordNotFound),
		errors.Is(err, goals.ErrGoalNotFound),
		errors.Is(err, apperrors.ErrNotFound):
		writeJSONError(w, "not_found", err.Error(), http.StatusNotFound)
	case errors.Is(err, entitlements.ErrNoPurchases):
		writeJSONError(w, "no_purchases", err.Error(), http.StatusNotFound)
	case errors.Is(err, entitlements.ErrUnknownPackage),
		errors.Is(err, oneshot.ErrEmptyPrompt),
		errors.Is(err, advisor.ErrEmptyDecision),
		errors.Is(err, goals.ErrTitleRequired),
		errors.Is(err, goals.ErrInvalidProgress):
		writeJSONError(w, "invalid_request", err.Error(), http.StatusBadRequest)
	case errors.Is(err, video.ErrGenerationFailed),
		errors.Is(err, video.ErrPollTimeout),
		errors.Is(err, apperrors.ErrRemoteService):
		writeJSONError(w, "remote_service_error", err.Error(), http.StatusBadGateway)
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		s.logger.Error().Err(err).Msg("store unavailable")
		writeJSONError(w, "store_unavailable", "storage is unavailable", http.StatusInternalServerError)
	default:
		s.logger.Error().Err(err).Msg("unhandled service error")
		writeJSONError(w, "internal_error", "internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON parses a request body, answering 400 on malformed input.
// Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, "invalid_request", "malformed JSON body", http.StatusBadRequest)
		return false
	}
	return true
}
