package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup or update matches no document.
	ErrNotFound = errors.New("not found")
	// ErrNotAcknowledged is returned when the store does not acknowledge a write.
	ErrNotAcknowledged = errors.New("write not acknowledged")
)
