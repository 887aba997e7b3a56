package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
	repo "github.com/taskhub/taskhub-api/internal/domain/repository"
)

// TaskService implements the task lifecycle: create, list, replace payload,
// finish and soft delete. Every mutation requires that the caller owns the
// task; the flags are one-way, there is no un-finish or un-delete.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

// Create stores a new task owned by userID. The payload is opaque.
func (s *TaskService) Create(ctx context.Context, callerID, userID string, payload any) error {
	if userID != callerID {
		return ErrForbidden
	}
	t := &entity.Task{UserID: userID, Task: payload}
	if err := s.Repo.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("task insert failed")
		}
		return err
	}
	return nil
}

// List returns the caller's tasks, excluding soft-deleted ones. An empty
// result is reported as ErrNoTasks.
func (s *TaskService) List(ctx context.Context, callerID, userID string) ([]entity.Task, error) {
	if userID != callerID {
		return nil, ErrForbidden
	}
	tasks, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	return tasks, nil
}

// UpdatePayload replaces the task payload in place.
func (s *TaskService) UpdatePayload(ctx context.Context, callerID, taskID string, payload any) error {
	if err := s.authorize(ctx, callerID, taskID); err != nil {
		return err
	}
	return s.mapStoreErr(s.Repo.ReplacePayload(ctx, taskID, payload))
}

// SoftDelete flags the task as deleted without removing the document.
func (s *TaskService) SoftDelete(ctx context.Context, callerID, taskID string) error {
	if err := s.authorize(ctx, callerID, taskID); err != nil {
		return err
	}
	return s.mapStoreErr(s.Repo.MarkDeleted(ctx, taskID))
}

// Finish flags the task as finished.
func (s *TaskService) Finish(ctx context.Context, callerID, taskID string) error {
	if err := s.authorize(ctx, callerID, taskID); err != nil {
		return err
	}
	return s.mapStoreErr(s.Repo.MarkFinished(ctx, taskID))
}

// authorize loads the task and verifies the caller owns it.
func (s *TaskService) authorize(ctx context.Context, callerID, taskID string) error {
	t, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if t.UserID != callerID {
		return ErrForbidden
	}
	return nil
}

func (s *TaskService) mapStoreErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
