package application

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
	"github.com/taskhub/taskhub-api/internal/domain/repository"
)

// In-memory repository fakes honoring the repository contracts, including
// the soft-delete exclusion in ListByUser.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by hex id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = primitive.NewObjectID()
	cp := *u
	r.users[u.ID.Hex()] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateDetails(_ context.Context, id string, details map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.UserDetails = details
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task
	order []string // insertion order for deterministic listings
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = primitive.NewObjectID()
	cp := *t
	r.tasks[t.ID.Hex()] = &cp
	r.order = append(r.order, t.ID.Hex())
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID string) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Task{}
	for _, id := range r.order {
		t := r.tasks[id]
		if t.UserID == userID && !t.IsDeleted {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ReplacePayload(_ context.Context, id string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Task = payload
	return nil
}

func (r *fakeTaskRepo) MarkDeleted(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.IsDeleted = true
	return nil
}

func (r *fakeTaskRepo) MarkFinished(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.IsFinished = true
	return nil
}

var (
	_ repository.UserRepository = (*fakeUserRepo)(nil)
	_ repository.TaskRepository = (*fakeTaskRepo)(nil)
)
