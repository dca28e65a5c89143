package models

import (
	"time"
)

// User represents an authenticated user of the system.
// PasswordHash is never serialized into any API response.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the minimal view of a user attached to a request context
// after token verification.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Identity returns the context-safe view of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

// EmotionReading is one logged emotion for a user. Intensity is on a
// 1-10 scale, Confidence in [0,1]. AIAnalyzed marks readings whose label
// came from the detector rather than the user.
type EmotionReading struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Emotion    string    `db:"emotion" json:"emotion"`
	Intensity  int       `db:"intensity" json:"intensity"`
	Context    string    `db:"context" json:"context"`
	Confidence float64   `db:"confidence" json:"confidence"`
	AIAnalyzed bool      `db:"ai_analyzed" json:"ai_analyzed"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}

// ChatMessage is one side of a chat turn. IsUser distinguishes the
// user-authored message from the generated reply.
type ChatMessage struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	Emotion   string    `db:"emotion" json:"emotion"`
	IsUser    bool      `db:"is_user" json:"is_user"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// Recommendation is a piece of emotion-conditioned content suggested to
// the user (music, activity, movie, ...).
type Recommendation struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emotion     string   `json:"emotion"`
	URL         string   `json:"url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
