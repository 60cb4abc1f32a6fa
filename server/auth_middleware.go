package server

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyEmail stores the authenticated user's email
	ContextKeyEmail ContextKey = "email"
)

// RequireAuth is middleware that validates a Bearer access token and
// injects the resolved identity into the request context.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, "unauthorized", "missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				writeJSONError(w, "unauthorized", "invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			identity, err := s.services.Tokens.Verify(parts[1])
			if err != nil {
				writeJSONError(w, "unauthorized", err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, identity.UserID)
			ctx = context.WithValue(ctx, ContextKeyEmail, identity.Email)
			next(w, r.WithContext(ctx))
		}
	}
}

// userIDFromContext returns the authenticated user ID, if any.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyUserID).(string)
	return id
}
