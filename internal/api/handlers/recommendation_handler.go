package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
)

type RecommendationHandler struct {
	responder *ai.Responder
	logger    zerolog.Logger
}

func NewRecommendationHandler(responder *ai.Responder, logger zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{responder: responder, logger: logger}
}

// Get returns recommendations for the emotion named in the query
// string. The generator absorbs upstream failures, so this can only
// fail on missing input.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	emotion := r.URL.Query().Get("emotion")
	if emotion == "" {
		writeError(w, h.logger, apperr.Validation("emotion parameter is required"))
		return
	}

	recommendations := h.responder.Recommend(r.Context(), emotion)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    recommendations,
		"emotion": emotion,
	})
}
