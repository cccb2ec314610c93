package player

import "errors"

var (
	// ErrNotFound is returned when no player matches the lookup.
	ErrNotFound = errors.New("player not found")
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)
