package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// Storages aggregates every repository over one database connection.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	OrderRepository   OrderRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.dialect)).Msg("migrations applied")

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		db:                db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
