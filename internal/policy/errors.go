package policy

import "errors"

var (
	ErrInvalidRequirement = errors.New("invalid access requirement")
	ErrInvalidRule        = errors.New("invalid access rule")
)
