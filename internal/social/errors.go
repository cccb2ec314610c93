package social

import "errors"

// ErrSelfFollow is returned when a player tries to follow themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")
