package healthhttp

import "errors"

// Authentication errors.
var (
	ErrMissingCredentials = errors.New("healthhttp: missing credentials")
	ErrInvalidCredentials = errors.New("healthhttp: invalid credentials")
	ErrTokenExpired       = errors.New("healthhttp: token expired")
	ErrTokenMalformed     = errors.New("healthhttp: token malformed")
)
