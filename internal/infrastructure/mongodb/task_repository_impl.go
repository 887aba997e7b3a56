package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/taskhub-api/internal/domain/entity"
	"github.com/taskhub/taskhub-api/internal/domain/repository"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(tasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return repository.ErrNotAcknowledged
	}
	t.ID = id
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	t := &entity.Task{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// ListByUser returns tasks owned by userID that have not been soft-deleted.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	filter := bson.M{"userId": userID, "isDeleted": bson.M{"$ne": true}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	tasks := []entity.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ReplacePayload(ctx context.Context, id string, payload any) error {
	return r.setFields(ctx, id, bson.M{"task": payload})
}

func (r *TaskRepository) MarkDeleted(ctx context.Context, id string) error {
	return r.setFields(ctx, id, bson.M{"isDeleted": true})
}

func (r *TaskRepository) MarkFinished(ctx context.Context, id string) error {
	return r.setFields(ctx, id, bson.M{"isFinished": true})
}

// setFields applies a $set update to a single task. Success is judged on
// MatchedCount so that setting a field to its current value still counts.
func (r *TaskRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
