package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
	repo "github.com/taskhub/taskhub-api/internal/domain/repository"
	"github.com/taskhub/taskhub-api/pkg/helpers"
)

// UserService implements registration, login and profile operations.
// It is the only component that creates or mutates User records.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// Session is an issued credential bound to a user identity.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Register stores a new user with a hashed password and issues a session
// credential bound to the created identity. The email must not be in use.
func (s *UserService) Register(ctx context.Context, username, email, password string) (Session, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Session{}, err
	}
	if existing != nil {
		return Session{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return Session{}, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return Session{}, err
	}

	token, exp, err := s.JWT.GenerateToken(u.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}

// Login verifies the password against the stored hash and issues a session
// credential. A failed compare never reaches token issuance. Store failures
// are passed through so they are not mistaken for bad credentials.
func (s *UserService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}

// GetByEmail looks up a user by email. The entity's password hash is
// excluded from serialization at the type level.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateDetails replaces the user_details blob for the given user. The
// caller may only update its own record.
func (s *UserService) UpdateDetails(ctx context.Context, callerID, userID string, details map[string]any) error {
	if userID != callerID {
		return ErrForbidden
	}
	if err := s.Repo.UpdateDetails(ctx, userID, details); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
