package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = "64f1b2c3d4e5f60718293a4b"

func createTask(t *testing.T, svc *TaskService, repo *fakeTaskRepo, payload any) string {
	t.Helper()
	require.NoError(t, svc.Create(context.Background(), ownerID, ownerID, payload))
	tasks, err := repo.ListByUser(context.Background(), ownerID)
	require.NoError(t, err)
	return tasks[len(tasks)-1].ID.Hex()
}

func TestCreateTask_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(newFakeTaskRepo(), nil)
	err := svc.Create(context.Background(), ownerID, "other-user", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)
	payload := map[string]any{"title": "write report", "priority": 2}
	createTask(t, svc, repo, payload)

	tasks, err := svc.List(context.Background(), ownerID, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, payload, tasks[0].Task)
	assert.Equal(t, ownerID, tasks[0].UserID)
}

func TestList_EmptyIsNoTasks(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(newFakeTaskRepo(), nil)
	_, err := svc.List(context.Background(), ownerID, ownerID)
	assert.ErrorIs(t, err, ErrNoTasks)
}

func TestList_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(newFakeTaskRepo(), nil)
	_, err := svc.List(context.Background(), ownerID, "other-user")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSoftDelete_ExcludedFromListing(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)
	createTask(t, svc, repo, map[string]any{"title": "keep"})
	dropID := createTask(t, svc, repo, map[string]any{"title": "drop"})

	require.NoError(t, svc.SoftDelete(context.Background(), ownerID, dropID))

	tasks, err := svc.List(context.Background(), ownerID, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, map[string]any{"title": "keep"}, tasks[0].Task)

	// The document survives with the flag set, only the listing hides it.
	dropped, err := repo.GetByID(context.Background(), dropID)
	require.NoError(t, err)
	assert.True(t, dropped.IsDeleted)
}

func TestFinish_SetsFlagAndStaysListed(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)
	id := createTask(t, svc, repo, map[string]any{"title": "done soon"})

	require.NoError(t, svc.Finish(context.Background(), ownerID, id))

	tasks, err := svc.List(context.Background(), ownerID, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].IsFinished)
}

func TestUpdatePayload(t *testing.T) {
	t.Parallel()

	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)
	id := createTask(t, svc, repo, map[string]any{"title": "v1"})

	t.Run("replace in place", func(t *testing.T) {
		require.NoError(t, svc.UpdatePayload(context.Background(), ownerID, id, map[string]any{"title": "v2"}))
		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "v2"}, got.Task)
	})

	t.Run("identical value still succeeds", func(t *testing.T) {
		assert.NoError(t, svc.UpdatePayload(context.Background(), ownerID, id, map[string]any{"title": "v2"}))
	})

	t.Run("nonexistent id", func(t *testing.T) {
		err := svc.UpdatePayload(context.Background(), ownerID, "aaaaaaaaaaaaaaaaaaaaaaaa", map[string]any{})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("foreign task", func(t *testing.T) {
		err := svc.UpdatePayload(context.Background(), "intruder", id, map[string]any{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
