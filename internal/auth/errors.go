package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthDisabled is returned when no shared password is configured.
	ErrAuthDisabled = errors.New("password authentication is disabled")

	// ErrNoSession is returned when the request carries no dashboard session.
	ErrNoSession = errors.New("no dashboard session")

	// ErrSessionExpired is returned when the stored session is past its TTL.
	ErrSessionExpired = errors.New("dashboard session expired")
)
