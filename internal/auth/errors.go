package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidInput is wrapped around registration validation failures.
	ErrInvalidInput = errors.New("invalid registration details")
)
