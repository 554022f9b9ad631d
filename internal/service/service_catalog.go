package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

// demoProducts are inserted into an empty catalog when seeding is enabled.
var demoProducts = []models.Product{
	{Name: "Chocolate Cookie", Description: "Delicious", Price: 2500, ImageURL: "/img/cookie1.jpg"},
	{Name: "Vanilla Cookie", Description: "Soft", Price: 2300, ImageURL: "/img/cookie2.jpg"},
}

type catalogService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewCatalogService(productRepository store.ProductRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = 0

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "catalogService.CreateProduct").Msg("product creation failed")
		return models.Product{}, fmt.Errorf("product creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, mapProductError(err)
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.productRepository.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing products failed: %w", err)
	}

	return products, nil
}

// UpdateProduct applies only the fields set in update.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	product, err := s.productRepository.UpdateProduct(ctx, id, update)
	if err != nil {
		return models.Product{}, mapProductError(err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Msg("product updated")
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return mapProductError(err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *catalogService) SeedDemoProducts(ctx context.Context) error {
	count, err := s.productRepository.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("counting products failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, product := range demoProducts {
		if _, err = s.productRepository.CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("seeding product %q failed: %w", product.Name, err)
		}
	}

	s.logger.Info().Int("count", len(demoProducts)).Msg("demo products created")
	return nil
}

func mapProductError(err error) error {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return err
	}
}
