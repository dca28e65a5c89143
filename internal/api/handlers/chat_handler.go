package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	appMiddleware "github.com/Muthu784/Backend-Emotion/internal/api/middlewares"
	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

type ChatHandler struct {
	chat   *services.ChatService
	logger zerolog.Logger
}

func NewChatHandler(chat *services.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	turn, err := h.chat.SendMessage(r.Context(), identity.ID, req.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    turn,
	})
}

func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	messages, err := h.chat.History(r.Context(), identity.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    messages,
	})
}
