package match

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the referenced match does not exist.
	ErrNotFound = errors.New("match not found")
	// ErrAlreadyFinalized is returned on any mutation of a confirmed or
	// cancelled match.
	ErrAlreadyFinalized = errors.New("match is already finalized")
	// ErrMatchFull is returned when a join is attempted on a full roster.
	ErrMatchFull = errors.New("match roster is full")
	// ErrNotAuthorized is returned when the acting player may not perform the
	// requested transition.
	ErrNotAuthorized = errors.New("operation not allowed for the acting player")
	// ErrInvalidTransition is returned for a lifecycle move the state machine
	// does not permit (other than mutating a terminal match).
	ErrInvalidTransition = errors.New("invalid match status transition")
)

// ValidationError reports an incomplete or contradictory score record. Set is
// the 1-based set number at fault, or 0 when the record as a whole is at fault.
type ValidationError struct {
	Set    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Set == 0 {
		return "invalid score: " + e.Reason
	}
	return fmt.Sprintf("invalid score: set %d %s", e.Set, e.Reason)
}
