package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	var created models.Product
	if err := r.db.queryRow(ctx, buildCreateProductQuery(r.db.builder, product), nil, productDest(&created)...); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error creating product")
		return models.Product{}, err
	}

	return created, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	if err := r.db.queryRow(ctx, buildGetProductQuery(r.db.builder, id), ErrProductNotFound, productDest(&product)...); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*productRepository.GetProduct").Int64("id", id).Msg("error getting product")
		}
		return models.Product{}, err
	}

	return product, nil
}

// ListProducts returns the products matching filter ordered by id. An empty
// catalog yields an empty, non-nil slice.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(r.db.builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(productDest(&p)...); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// UpdateProduct applies the non-nil fields of update and returns the
// resulting product.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	b, err := buildUpdateProductQuery(r.db.builder, id, update)
	if err != nil {
		return models.Product{}, err
	}

	var updated models.Product
	if err = r.db.queryRow(ctx, b, ErrProductNotFound, productDest(&updated)...); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*productRepository.UpdateProduct").Int64("id", id).Msg("error updating product")
		}
		return models.Product{}, err
	}

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(r.db.builder, id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("id", id).Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.queryRow(ctx, buildCountProductsQuery(r.db.builder), nil, &count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.CountProducts").Msg("error counting products")
		return 0, err
	}
	return count, nil
}

// productDest lists scan targets in [productColumns] order.
func productDest(p *models.Product) []any {
	return []any{&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL}
}
