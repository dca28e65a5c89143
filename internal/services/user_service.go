// Package services contains the business logic between handlers and the
// database client.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/apperr"
	"github.com/Muthu784/Backend-Emotion/internal/auth"
	db "github.com/Muthu784/Backend-Emotion/internal/core/database"
	"github.com/Muthu784/Backend-Emotion/internal/models"
)

// UserService is the credential store: it owns password hashing and the
// registration/login contracts. The password hash never leaves this
// layer except inside *models.User, which excludes it from JSON.
type UserService struct {
	db         db.DbClient
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(dbclient db.DbClient, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &UserService{db: dbclient, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a new user. A duplicate email fails with a Duplicate
// error; the uniqueness check is the database constraint, so concurrent
// registrations cannot both win.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || password == "" {
		return nil, apperr.Validation("username, email and password are required")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperr.Duplicate("user already exists")
		}
		return nil, apperr.StoreUnavailable(err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// VerifyCredentials checks an email/password pair. Unknown email and
// wrong password both yield the same generic error so the API cannot be
// used to enumerate accounts; the distinction is logged at debug level
// only.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	if user == nil {
		s.logger.Debug().Msg("login failed: unknown email")
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Debug().Str("user_id", user.ID).Msg("login failed: wrong password")
		return nil, apperr.Unauthenticated("invalid credentials")
	}
	return user, nil
}

// GetByID resolves a user id to a live user, or NotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile changes username/email for the authenticated user.
func (s *UserService) UpdateProfile(ctx context.Context, id, username, email string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" {
		return apperr.Validation("username and email are required")
	}
	if err := s.db.UpdateUserProfile(ctx, id, username, email); err != nil {
		if db.IsUniqueViolation(err) {
			return apperr.Duplicate("email already in use")
		}
		return apperr.StoreUnavailable(err)
	}
	return nil
}
