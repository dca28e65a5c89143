package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Muthu784/Backend-Emotion/internal/config"
	"github.com/Muthu784/Backend-Emotion/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, cfg *config.Config) (DbClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database client configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: sqlDB}, nil
}

// NewDatabaseClientFromDB wraps an existing handle. Used by tests.
func NewDatabaseClientFromDB(sqlDB *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: sqlDB}
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *DatabaseClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate email on users).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Implementing the db interface for user

func (c *DatabaseClient) CreateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	const q = `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), COALESCE($6, now()))
	`
	_, err := c.db.ExecContext(ctx, q,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	return err
}

func (c *DatabaseClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`
	var u models.User
	err := c.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *DatabaseClient) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const q = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1
	`
	var u models.User
	err := c.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *DatabaseClient) UpdateUserProfile(ctx context.Context, id, username, email string) error {
	const q = `
		UPDATE users
		SET username = $2, email = $3, updated_at = now()
		WHERE id = $1
	`
	res, err := c.db.ExecContext(ctx, q, id, username, email)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// Implementing the db interface for emotion readings

func (c *DatabaseClient) CreateEmotion(ctx context.Context, reading *models.EmotionReading) error {
	if reading == nil {
		return errors.New("nil emotion reading")
	}
	const q = `
		INSERT INTO emotions (id, user_id, emotion, intensity, context, confidence, ai_analyzed, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()))
	`
	_, err := c.db.ExecContext(ctx, q,
		reading.ID, reading.UserID, reading.Emotion, reading.Intensity,
		reading.Context, reading.Confidence, reading.AIAnalyzed, reading.Timestamp)
	return err
}

func (c *DatabaseClient) ListEmotionsByUser(ctx context.Context, userID string) ([]models.EmotionReading, error) {
	const q = `
		SELECT id, user_id, emotion, intensity, context, confidence, ai_analyzed, timestamp
		FROM emotions
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.EmotionReading
	for rows.Next() {
		var e models.EmotionReading
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Emotion, &e.Intensity, &e.Context, &e.Confidence, &e.AIAnalyzed, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteEmotion removes a reading only when it belongs to userID. The
// ownership check lives in the WHERE clause so a foreign id reads the
// same as a missing one.
func (c *DatabaseClient) DeleteEmotion(ctx context.Context, id, userID string) (bool, error) {
	const q = `DELETE FROM emotions WHERE id = $1 AND user_id = $2`
	res, err := c.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Implementing the db interface for chat messages

// CreateChatTurn inserts the user message and the generated reply in a
// single transaction. The user message goes first.
func (c *DatabaseClient) CreateChatTurn(ctx context.Context, userMsg, aiMsg *models.ChatMessage) error {
	if userMsg == nil || aiMsg == nil {
		return errors.New("nil chat message")
	}
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	const q = `
		INSERT INTO chat_messages (id, user_id, content, emotion, is_user, timestamp)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
	`
	for _, m := range []*models.ChatMessage{userMsg, aiMsg} {
		if _, err := tx.ExecContext(ctx, q,
			m.ID, m.UserID, m.Content, m.Emotion, m.IsUser, m.Timestamp,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (c *DatabaseClient) ListChatMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	const q = `
		SELECT id, user_id, content, emotion, is_user, timestamp
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY timestamp ASC
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &m.Emotion, &m.IsUser, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
