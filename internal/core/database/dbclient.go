package db

import (
	"context"

	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// DbClient defines all persistence operations the services need.
// It abstracts Postgres so higher layers never depend on a specific DB.
type DbClient interface {
	CreateUser(ctx context.Context, user *models.User) (err error)
	GetUserByEmail(ctx context.Context, email string) (user *models.User, err error)
	GetUserByID(ctx context.Context, id string) (user *models.User, err error)
	UpdateUserProfile(ctx context.Context, id, username, email string) error

	CreateEmotion(ctx context.Context, reading *models.EmotionReading) error
	ListEmotionsByUser(ctx context.Context, userID string) ([]models.EmotionReading, error)
	DeleteEmotion(ctx context.Context, id, userID string) (bool, error)

	// CreateChatTurn persists a user message and its generated reply in
	// one transaction so a crash never leaves an orphaned reply.
	CreateChatTurn(ctx context.Context, userMsg, aiMsg *models.ChatMessage) error
	ListChatMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error)

	Ping(ctx context.Context) error
	Close() error
}
