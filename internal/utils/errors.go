package utils

import "errors"

var (
	// ErrInvalidToken is the single outcome of every token validation
	// failure: malformed structure, bad signature, wrong algorithm, wrong
	// issuer, missing subject or expiry. Callers cannot tell them apart.
	ErrInvalidToken = errors.New("invalid token")

	ErrInvalidTokenCodecParams    = errors.New("invalid params for token codec")
	ErrEmptySubject               = errors.New("empty token subject")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrInvalidRequestBody         = errors.New("invalid request body")
)
