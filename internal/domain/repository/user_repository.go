package repository

import (
	"context"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateDetails(ctx context.Context, id string, details map[string]any) error
}
