package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a per-user task record. UserID holds the hex id of the owning
// user; it is a plain string reference, not enforced by the store.
// The payload shape is opaque to the backend.
//
// IsFinished and IsDeleted are one-way flags: the API only ever sets them
// to true (soft delete, no un-finish).
type Task struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID     string             `bson:"userId" json:"userId"`
	Task       any                `bson:"task" json:"task"`
	IsFinished bool               `bson:"isFinished,omitempty" json:"isFinished,omitempty"`
	IsDeleted  bool               `bson:"isDeleted,omitempty" json:"isDeleted,omitempty"`
}
