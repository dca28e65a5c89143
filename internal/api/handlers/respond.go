package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps a taxonomy error to its HTTP status and a client-safe
// message. Server-side detail (wrapped causes, stack context) stays in
// the log; the client body never carries it.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   apperr.MessageOf(err),
	})
}
