package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	appMiddleware "github.com/Muthu784/Backend-Emotion/internal/api/middlewares"
	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

type EmotionHandler struct {
	emotions *services.EmotionService
	logger   zerolog.Logger
}

func NewEmotionHandler(emotions *services.EmotionService, logger zerolog.Logger) *EmotionHandler {
	return &EmotionHandler{emotions: emotions, logger: logger}
}

func (h *EmotionHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	readings, err := h.emotions.History(r.Context(), identity.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    readings,
	})
}

func (h *EmotionHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	var in services.AddEmotionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	reading, analysis, err := h.emotions.Add(r.Context(), identity.ID, in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	payload := map[string]any{
		"success": true,
		"data":    reading,
	}
	if analysis != nil {
		payload["analysis"] = analysis
	}
	writeJSON(w, http.StatusCreated, payload)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze runs emotion detection without recording a reading.
func (h *EmotionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	analysis, err := h.emotions.Analyze(r.Context(), req.Text)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    analysis,
		"text":    req.Text,
	})
}

func (h *EmotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := appMiddleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthenticated("not authorized"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.emotions.Delete(r.Context(), id, identity.ID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "emotion deleted",
	})
}
