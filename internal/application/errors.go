package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email address already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoTasks            = errors.New("no tasks found")
	ErrForbidden          = errors.New("resource owned by another user")
)
