package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings
	// (for example, a missing or short token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAccessConfigs indicates an unparseable access rule or
	// default requirement.
	ErrInvalidAccessConfigs = errors.New("invalid access configuration")
	// ErrInvalidSeedConfigs indicates an admin username without a password.
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
)
