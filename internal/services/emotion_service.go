package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
	db "github.com/Muthu784/Backend-Emotion/internal/core/database"
	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// AddEmotionInput is one emotion submission. Either Text (AI detection)
// or Emotion (manual entry) must be set; Text wins when both are.
type AddEmotionInput struct {
	Text      string `json:"text"`
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Context   string `json:"context"`
}

// EmotionService owns the emotion-reading lifecycle.
type EmotionService struct {
	db       db.DbClient
	detector *ai.Detector
	logger   zerolog.Logger
}

func NewEmotionService(dbclient db.DbClient, detector *ai.Detector, logger zerolog.Logger) *EmotionService {
	return &EmotionService{db: dbclient, detector: detector, logger: logger}
}

// Add records a reading. Text input runs through the detector (which
// never fails past its fallback); the returned analysis is non-nil only
// for AI-derived readings.
func (s *EmotionService) Add(ctx context.Context, userID string, in AddEmotionInput) (*models.EmotionReading, *ai.Analysis, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && in.Emotion == "" {
		return nil, nil, apperr.Validation("either text or emotion is required")
	}

	var (
		emotion    string
		confidence float64
		analysis   *ai.Analysis
	)
	if text != "" {
		a, err := s.detector.Detect(ctx, text)
		if err != nil {
			return nil, nil, err
		}
		analysis = a
		emotion = a.Primary.Label
		confidence = a.Primary.Score
	} else {
		if !ai.KnownLabel(in.Emotion) {
			return nil, nil, apperr.Validation("unknown emotion label")
		}
		emotion = in.Emotion
	}

	intensity := in.Intensity
	switch {
	case intensity == 0 && analysis != nil:
		intensity = int(math.Round(confidence * 10))
		if intensity < 1 {
			intensity = 1
		}
	case intensity == 0:
		intensity = 5
	case intensity < 1 || intensity > 10:
		return nil, nil, apperr.Validation("intensity must be between 1 and 10")
	}

	readingContext := in.Context
	if readingContext == "" {
		readingContext = text
	}
	if readingContext == "" {
		readingContext = "Manual entry"
	}

	reading := &models.EmotionReading{
		ID:         uuid.NewString(),
		UserID:     userID,
		Emotion:    emotion,
		Intensity:  intensity,
		Context:    readingContext,
		Confidence: confidence,
		AIAnalyzed: analysis != nil,
		Timestamp:  time.Now(),
	}

	if err := s.db.CreateEmotion(ctx, reading); err != nil {
		return nil, nil, apperr.StoreUnavailable(err)
	}

	s.logger.Info().Str("user_id", userID).Str("emotion", emotion).Bool("ai_analyzed", reading.AIAnalyzed).Msg("emotion recorded")
	return reading, analysis, nil
}

// History lists the user's readings, newest first.
func (s *EmotionService) History(ctx context.Context, userID string) ([]models.EmotionReading, error) {
	readings, err := s.db.ListEmotionsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return readings, nil
}

// Delete removes a reading owned by userID. A reading that does not
// exist and one owned by someone else are indistinguishable: NotFound.
func (s *EmotionService) Delete(ctx context.Context, id, userID string) error {
	ok, err := s.db.DeleteEmotion(ctx, id, userID)
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if !ok {
		return apperr.NotFound("emotion not found")
	}
	return nil
}

// Analyze runs detection without persisting anything.
func (s *EmotionService) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	return s.detector.Detect(ctx, text)
}
