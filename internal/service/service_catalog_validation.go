package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/validators"
	"github.com/MKhiriev/go-order-keeper/models"
)

// CatalogValidationService checks catalog input before passing it to the
// wrapped CatalogService.
type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewDomainValidator(),
	}
}

func (v *CatalogValidationService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if err := v.validator.Validate(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProduct(ctx, product)
}

func (v *CatalogValidationService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	if id <= 0 {
		return models.Product{}, ErrProductNotFound
	}

	return v.inner.GetProduct(ctx, id)
}

func (v *CatalogValidationService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, fmt.Errorf("%w: min_price is greater than max_price", ErrInvalidDataProvided)
	}

	return v.inner.ListProducts(ctx, filter)
}

func (v *CatalogValidationService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if id <= 0 {
		return models.Product{}, ErrProductNotFound
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProduct(ctx, id, update)
}

func (v *CatalogValidationService) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrProductNotFound
	}

	return v.inner.DeleteProduct(ctx, id)
}

func (v *CatalogValidationService) SeedDemoProducts(ctx context.Context) error {
	return v.inner.SeedDemoProducts(ctx)
}

func (v *CatalogValidationService) Wrap(wrapped CatalogService) CatalogService {
	v.inner = wrapped
	return v
}
