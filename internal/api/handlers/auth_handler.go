package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	appMiddleware "github.com/Muthu784/Backend-Emotion/internal/api/middlewares"
	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/auth"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(w, h.logger, apperr.Internal(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.users.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(w, h.logger, apperr.Internal(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// Me returns the identity the middleware resolved for this request.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    identity,
	})
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Update changes the profile of the authenticated user. The target id
// always comes from the verified token, never from the request body.
func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	if err := h.users.UpdateProfile(r.Context(), identity.ID, req.Username, req.Email); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "profile updated",
	})
}
