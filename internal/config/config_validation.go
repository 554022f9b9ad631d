// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-order-keeper/internal/policy"
)

// minTokenSignKeyLength is the minimal HS256 secret size in bytes.
const minTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.AuthRateLimit < 0 {
		return fmt.Errorf("%w: negative auth rate limit", ErrInvalidServerConfigs)
	}

	if _, err := policy.ParseRequirement(cfg.Access.DefaultRequirement); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccessConfigs, err)
	}
	for _, rule := range cfg.Access.Rules {
		if _, err := policy.ParseRule(rule); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAccessConfigs, err)
		}
	}

	if cfg.Seed.AdminUsername != "" && cfg.Seed.AdminPassword == "" {
		return ErrInvalidSeedConfigs
	}

	return nil
}
