package services

import (
	"context"
	"sync"

	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// fakeDB is an in-memory DbClient for service tests.
type fakeDB struct {
	mu sync.Mutex

	usersByID    map[string]*models.User
	usersByEmail map[string]*models.User
	emotions     map[string]*models.EmotionReading
	chatTurns    [][2]*models.ChatMessage

	createUserErr    error
	createEmotionErr error
	chatTurnErr      error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		usersByID:    map[string]*models.User{},
		usersByEmail: map[string]*models.User{},
		emotions:     map[string]*models.EmotionReading{},
	}
}

func (f *fakeDB) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return f.createUserErr
	}
	f.usersByID[user.ID] = user
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.usersByEmail[email], nil
}

func (f *fakeDB) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.usersByID[id], nil
}

func (f *fakeDB) UpdateUserProfile(_ context.Context, id, username, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.usersByID[id]; ok {
		u.Username, u.Email = username, email
	}
	return nil
}

func (f *fakeDB) CreateEmotion(_ context.Context, reading *models.EmotionReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createEmotionErr != nil {
		return f.createEmotionErr
	}
	f.emotions[reading.ID] = reading
	return nil
}

func (f *fakeDB) ListEmotionsByUser(_ context.Context, userID string) ([]models.EmotionReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.EmotionReading
	for _, e := range f.emotions {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeDB) DeleteEmotion(_ context.Context, id, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.emotions[id]
	if !ok || e.UserID != userID {
		return false, nil
	}
	delete(f.emotions, id)
	return true, nil
}

func (f *fakeDB) CreateChatTurn(_ context.Context, userMsg, aiMsg *models.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chatTurnErr != nil {
		return f.chatTurnErr
	}
	f.chatTurns = append(f.chatTurns, [2]*models.ChatMessage{userMsg, aiMsg})
	return nil
}

func (f *fakeDB) ListChatMessagesByUser(_ context.Context, userID string) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ChatMessage
	for _, turn := range f.chatTurns {
		for _, m := range turn {
			if m.UserID == userID {
				out = append(out, *m)
			}
		}
	}
	return out, nil
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
