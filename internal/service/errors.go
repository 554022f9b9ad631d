package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUsernameTaken is returned by registration when the username already
	// belongs to an account.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials is returned by login both for an unknown username
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is returned by Authenticate for a missing, invalid or
	// expired token and for a token whose account no longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstreamUnavailable wraps identity store I/O failures. It is never
	// converted into ErrUnauthorized.
	ErrUpstreamUnavailable = errors.New("identity store is unavailable")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrMenuUnavailable = errors.New("menu is unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
