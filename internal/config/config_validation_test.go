package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func validConfig() StructuredConfig {
	cfg := StructuredConfig{
		App: App{
			TokenSignKey:     "0123456789abcdef0123456789abcdef",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
		},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file::memory:"}},
	}
	cfg.applyDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "short sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "short" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non-positive token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = bcrypt.MaxCost + 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative rate limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.AuthRateLimit = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "bad default requirement",
			mutate:  func(cfg *StructuredConfig) { cfg.Access.DefaultRequirement = "everyone" },
			wantErr: ErrInvalidAccessConfigs,
		},
		{
			name:    "bad rule",
			mutate:  func(cfg *StructuredConfig) { cfg.Access.Rules = []string{"/api/reports"} },
			wantErr: ErrInvalidAccessConfigs,
		},
		{
			name:    "seed admin without password",
			mutate:  func(cfg *StructuredConfig) { cfg.Seed.AdminUsername = "admin" },
			wantErr: ErrInvalidSeedConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
