package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-order-keeper/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Authenticate validates a raw token and re-resolves its subject.
	Authenticate(ctx context.Context, token string) (models.Principal, error)
	// SeedAdmin creates an ADMIN account unless the username already exists.
	SeedAdmin(ctx context.Context, credentials models.Credentials) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	// SeedDemoProducts fills an empty catalog with sample entries.
	SeedDemoProducts(ctx context.Context) error
}

// OrderService applies ownership rules: a non-admin principal only ever sees
// orders it created.
type OrderService interface {
	CreateOrder(ctx context.Context, principal models.Principal, order models.Order) (models.Order, error)
	GetOrder(ctx context.Context, principal models.Principal, id int64) (models.Order, error)
	ListOrders(ctx context.Context, principal models.Principal, status models.OrderStatus) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error)
	Stats(ctx context.Context) (models.OrderStats, error)
}

type MenuService interface {
	// GetMenu returns a JSON document with a "data" array of menu items.
	GetMenu(ctx context.Context) (json.RawMessage, error)
}

type HealthService interface {
	// Check returns nil when every dependency answers.
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService
}

// OrderServiceWrapper defines middleware composition for OrderService.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService
}
