package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/validators"
	"github.com/MKhiriev/go-order-keeper/models"
)

// orderCreateFields are checked on a new order. Status is not among them
// because the service overwrites it.
var orderCreateFields = []string{
	validators.FieldName,
	validators.FieldPhone,
	validators.FieldAddress,
	validators.FieldTotal,
	validators.FieldItems,
}

// OrderValidationService checks order input before passing it to the
// wrapped OrderService.
type OrderValidationService struct {
	inner     OrderService
	validator validators.Validator
}

func NewOrderValidationService() OrderServiceWrapper {
	return &OrderValidationService{
		validator: validators.NewDomainValidator(),
	}
}

func (v *OrderValidationService) CreateOrder(ctx context.Context, principal models.Principal, order models.Order) (models.Order, error) {
	if err := v.validator.Validate(ctx, order, orderCreateFields...); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateOrder(ctx, principal, order)
}

func (v *OrderValidationService) GetOrder(ctx context.Context, principal models.Principal, id int64) (models.Order, error) {
	if id <= 0 {
		return models.Order{}, ErrOrderNotFound
	}

	return v.inner.GetOrder(ctx, principal, id)
}

func (v *OrderValidationService) ListOrders(ctx context.Context, principal models.Principal, status models.OrderStatus) ([]models.Order, error) {
	if status != "" {
		if err := v.validateStatus(ctx, status); err != nil {
			return nil, err
		}
	}

	return v.inner.ListOrders(ctx, principal, status)
}

func (v *OrderValidationService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	if err := v.validateStatus(ctx, status); err != nil {
		return models.Order{}, err
	}
	if id <= 0 {
		return models.Order{}, ErrOrderNotFound
	}

	return v.inner.UpdateOrderStatus(ctx, id, status)
}

func (v *OrderValidationService) Stats(ctx context.Context) (models.OrderStats, error) {
	return v.inner.Stats(ctx)
}

func (v *OrderValidationService) Wrap(wrapped OrderService) OrderService {
	v.inner = wrapped
	return v
}

func (v *OrderValidationService) validateStatus(ctx context.Context, status models.OrderStatus) error {
	if err := v.validator.Validate(ctx, models.Order{Status: status}, validators.FieldStatus); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
