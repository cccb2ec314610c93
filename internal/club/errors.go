package club

import "errors"

var (
	// ErrNotFound is returned when no club or court matches the lookup.
	ErrNotFound = errors.New("club not found")
	// ErrDuplicate is returned when a club name or court name within a club
	// is already taken.
	ErrDuplicate = errors.New("name already taken")
)
