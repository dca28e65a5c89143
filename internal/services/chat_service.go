package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
	db "github.com/Muthu784/Backend-Emotion/internal/core/database"
	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// ChatTurn is the full result of one chat exchange.
type ChatTurn struct {
	UserMessage     *models.ChatMessage     `json:"userMessage"`
	AIMessage       *models.ChatMessage     `json:"aiMessage"`
	EmotionAnalysis *ai.Analysis            `json:"emotionAnalysis"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// ChatService orchestrates a chat turn: detect the emotion, generate a
// reply and recommendations, then persist both messages atomically.
type ChatService struct {
	db        db.DbClient
	detector  *ai.Detector
	responder *ai.Responder
	logger    zerolog.Logger
}

func NewChatService(dbclient db.DbClient, detector *ai.Detector, responder *ai.Responder, logger zerolog.Logger) *ChatService {
	return &ChatService{db: dbclient, detector: detector, responder: responder, logger: logger}
}

// SendMessage runs one chat turn for userID. Reply and recommendation
// generation are independent remote calls, so they run concurrently;
// both messages land in one transaction afterwards.
func (s *ChatService) SendMessage(ctx context.Context, userID, content string) (*ChatTurn, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("message content is required")
	}

	analysis, err := s.detector.Detect(ctx, content)
	if err != nil {
		return nil, err
	}
	emotion := analysis.Primary.Label

	var (
		reply *ai.Reply
		recs  []models.Recommendation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reply = s.responder.Respond(gctx, content, emotion)
		return nil
	})
	g.Go(func() error {
		recs = s.responder.Recommend(gctx, emotion)
		return nil
	})
	_ = g.Wait()

	now := time.Now()
	userMsg := &models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Emotion:   emotion,
		IsUser:    true,
		Timestamp: now,
	}
	aiMsg := &models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   reply.Text,
		Emotion:   reply.SuggestedEmotion,
		IsUser:    false,
		Timestamp: now,
	}

	if err := s.db.CreateChatTurn(ctx, userMsg, aiMsg); err != nil {
		return nil, apperr.StoreUnavailable(err)
	}

	s.logger.Info().Str("user_id", userID).Str("emotion", emotion).Msg("chat turn recorded")

	return &ChatTurn{
		UserMessage:     userMsg,
		AIMessage:       aiMsg,
		EmotionAnalysis: analysis,
		Recommendations: recs,
	}, nil
}

// History lists the user's chat messages, oldest first.
func (s *ChatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	messages, err := s.db.ListChatMessagesByUser(ctx, userID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return messages, nil
}
