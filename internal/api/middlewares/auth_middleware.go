// Package middleware holds the identity middleware guarding protected
// routes: token extraction, verification, and live-user resolution.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/auth"
	"github.com/Muthu784/Backend-Emotion/internal/models"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

type ctxKey int

const identityKey ctxKey = iota

// AuthMiddleware verifies a bearer token and attaches the resolved
// identity to the request context. Any failure short-circuits with a
// generic 401; the specific failure kind only reaches the logs.
type AuthMiddleware struct {
	tokens *auth.TokenService
	users  *services.UserService
	logger zerolog.Logger
}

func NewAuthMiddleware(tokens *auth.TokenService, users *services.UserService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			m.reject(w, "not authorized to access this route")
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Debug().Err(err).Msg("token verification failed")
			m.reject(w, "not authorized, token failed")
			return
		}

		// A valid token does not imply a live user.
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			m.logger.Debug().Err(err).Str("user_id", userID).Msg("token user lookup failed")
			m.reject(w, "not authorized to access this route")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, user.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken prefers the Authorization bearer header and falls back
// to the token cookie; the header wins when both are present.
func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

// IdentityFrom returns the identity attached by the middleware.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}
