package repository

import (
	"context"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
)

// TaskRepository defines the interface for task-related store operations.
// Every method maps to a single document read or write.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	ReplacePayload(ctx context.Context, id string, payload any) error
	MarkDeleted(ctx context.Context, id string) error
	MarkFinished(ctx context.Context, id string) error
}
