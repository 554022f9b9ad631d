package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/mock"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func newTestCatalog(t *testing.T) (CatalogService, *mock.MockProductRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	products := mock.NewMockProductRepository(ctrl)
	return NewCatalogValidationService().Wrap(NewCatalogService(products, logger.Nop())), products
}

func TestCatalogService_CreateProduct(t *testing.T) {
	catalog, products := newTestCatalog(t)

	products.EXPECT().CreateProduct(gomock.Any(), models.Product{Name: "Tea", Description: "Green", Price: 900}).
		Return(models.Product{ID: 7, Name: "Tea", Description: "Green", Price: 900}, nil)

	created, err := catalog.CreateProduct(context.Background(), models.Product{ID: 99, Name: "Tea", Description: "Green", Price: 900})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestCatalogService_CreateProduct_Invalid(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.CreateProduct(context.Background(), models.Product{Name: "Tea", Description: "Green", Price: -1})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	catalog, products := newTestCatalog(t)

	products.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := catalog.GetProduct(context.Background(), 3)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = catalog.GetProduct(context.Background(), 0)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_ListProducts_PriceRange(t *testing.T) {
	catalog, products := newTestCatalog(t)
	filter := models.ProductFilter{Name: "galleta", MinPrice: ptr(int64(100)), MaxPrice: ptr(int64(3000))}

	products.EXPECT().ListProducts(gomock.Any(), filter).Return([]models.Product{{ID: 1}}, nil)

	got, err := catalog.ListProducts(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = catalog.ListProducts(context.Background(), models.ProductFilter{MinPrice: ptr(int64(10)), MaxPrice: ptr(int64(5))})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	catalog, products := newTestCatalog(t)
	update := models.ProductUpdate{Price: ptr(int64(1200))}

	products.EXPECT().UpdateProduct(gomock.Any(), int64(5), update).Return(models.Product{ID: 5, Price: 1200}, nil)
	products.EXPECT().UpdateProduct(gomock.Any(), int64(6), update).Return(models.Product{}, store.ErrProductNotFound)

	got, err := catalog.UpdateProduct(context.Background(), 5, update)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), got.Price)

	_, err = catalog.UpdateProduct(context.Background(), 6, update)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = catalog.UpdateProduct(context.Background(), 5, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	catalog, products := newTestCatalog(t)

	products.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(nil)
	products.EXPECT().DeleteProduct(gomock.Any(), int64(6)).Return(store.ErrProductNotFound)

	assert.NoError(t, catalog.DeleteProduct(context.Background(), 5))
	assert.ErrorIs(t, catalog.DeleteProduct(context.Background(), 6), ErrProductNotFound)
}

func TestCatalogService_SeedDemoProducts(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		catalog, products := newTestCatalog(t)

		products.EXPECT().CountProducts(gomock.Any()).Return(int64(0), nil)
		products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, nil).Times(len(demoProducts))

		assert.NoError(t, catalog.SeedDemoProducts(context.Background()))
	})

	t.Run("catalog has products", func(t *testing.T) {
		catalog, products := newTestCatalog(t)

		products.EXPECT().CountProducts(gomock.Any()).Return(int64(3), nil)

		assert.NoError(t, catalog.SeedDemoProducts(context.Background()))
	})
}
