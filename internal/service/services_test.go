package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

func newTestConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:     testSignKey,
			TokenIssuer:      "go-order-keeper",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "1.0.0",
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: "file::memory:?_foreign_keys=on"}},
		Seed: config.Seed{
			AdminUsername: "admin",
			AdminPassword: "admin123",
			DemoProducts:  true,
		},
	}
}

func newTestServices(t *testing.T, cfg config.StructuredConfig) *Services {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewServices_InvalidConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.App.Version = ""

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	cfg = newTestConfig()
	cfg.Upstream.MenuURL = "ftp://menu"
	_, err = NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestServices_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	services := newTestServices(t, cfg)

	require.NoError(t, services.Seed(ctx, cfg.Seed))
	require.NoError(t, services.Seed(ctx, cfg.Seed))

	session, err := services.AuthService.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Principal.Role)

	products, err := services.CatalogService.ListProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, len(demoProducts))

	assert.NoError(t, services.HealthService.Check(ctx))
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(ctx))
}

func TestServices_SeedDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	services := newTestServices(t, cfg)

	require.NoError(t, services.Seed(ctx, config.Seed{}))

	_, err := services.AuthService.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
