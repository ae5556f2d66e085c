package store

import "errors"

var (
	// ErrEmptyField rejects a call whose title, details or location is
	// blank after trimming.
	ErrEmptyField = errors.New("required field is empty")

	// ErrBadPriority rejects a priority value outside the known set.
	ErrBadPriority = errors.New("unknown priority value")

	// ErrCallNotFound is returned for operations on an absent call id.
	ErrCallNotFound = errors.New("call not found")

	// ErrEmptyMessage rejects a chat message that trims to nothing.
	ErrEmptyMessage = errors.New("message is empty")
)
