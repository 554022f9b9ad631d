package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress     = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "go-order-keeper"
	defaultTokenDuration   = 24 * time.Hour
	defaultDriver          = DriverPostgres
	defaultMaxOpenConns    = 10
	defaultUpstreamTimeout = 5 * time.Second
	defaultRequirement     = "authenticated"
	defaultAuthRateBurst   = 10
	defaultLogLevel        = "info"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// applyDefaults fills fields that no configuration source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.AuthRateLimit > 0 && cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = defaultAuthRateBurst
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}

	if cfg.Access.DefaultRequirement == "" {
		cfg.Access.DefaultRequirement = defaultRequirement
	}

	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = defaultUpstreamTimeout
	}
}
