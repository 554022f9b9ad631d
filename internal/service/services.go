package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	OrderService   OrderService
	MenuService    MenuService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokens, err := utils.NewTokenCodec(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	hasher, err := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	var menuAdapter adapter.MenuAdapter
	if cfg.Upstream.MenuURL != "" {
		menuAdapter, err = adapter.NewHTTPMenuAdapter(cfg.Upstream, logger)
		if err != nil {
			return nil, err
		}
	}

	catalog := NewCatalogValidationService().Wrap(NewCatalogService(storages.ProductRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokens, hasher, logger),
		CatalogService: catalog,
		OrderService:   NewOrderValidationService().Wrap(NewOrderService(storages.OrderRepository, logger)),
		MenuService:    NewMenuService(menuAdapter, catalog, logger),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages),
	}, nil
}

// Seed creates the bootstrap admin and the demo catalog when configured.
func (s *Services) Seed(ctx context.Context, cfg config.Seed) error {
	if cfg.AdminUsername != "" {
		err := s.AuthService.SeedAdmin(ctx, models.Credentials{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		})
		if err != nil {
			return fmt.Errorf("error seeding admin account: %w", err)
		}
	}

	if cfg.DemoProducts {
		if err := s.CatalogService.SeedDemoProducts(ctx); err != nil {
			return fmt.Errorf("error seeding demo products: %w", err)
		}
	}

	return nil
}
