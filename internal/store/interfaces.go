package store

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the identity store consulted by authentication.
type UserRepository interface {
	// FindUserByUsername returns [ErrNoUserWasFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// CreateUser returns [ErrUsernameAlreadyExists] on a unique violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ProductRepository persists the catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int64, error)
}

// OrderRepository persists customer orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error)
	OrderStats(ctx context.Context) (models.OrderStats, error)
}
