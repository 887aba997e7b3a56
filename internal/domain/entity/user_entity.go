package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password and never serialized.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	UserDetails map[string]any     `bson:"user_details,omitempty" json:"user_details,omitempty"`
}
