package errors

import "errors"

var (
	// ErrLockHeld reports that another request currently holds the advisory
	// lock for the same (room, date).
	ErrLockHeld = errors.New("slot lock is held by another request")
)
