package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

type orderService struct {
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// CreateOrder stores a new order owned by principal. Whatever status the
// caller sent, a new order always starts as PENDING.
func (s *orderService) CreateOrder(ctx context.Context, principal models.Principal, order models.Order) (models.Order, error) {
	order.ID = 0
	order.Status = models.OrderPending
	order.CreatedBy = principal.Username

	created, err := s.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "orderService.CreateOrder").Msg("order creation failed")
		return models.Order{}, fmt.Errorf("order creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("order_id", created.ID).
		Str("created_by", created.CreatedBy).
		Msg("order created")
	return created, nil
}

// GetOrder returns ErrOrderNotFound both for a missing order and for an
// order that belongs to someone else, unless principal is an admin.
func (s *orderService) GetOrder(ctx context.Context, principal models.Principal, id int64) (models.Order, error) {
	order, err := s.orderRepository.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, mapOrderError(err)
	}

	if !principal.IsAdmin() && order.CreatedBy != principal.Username {
		return models.Order{}, ErrOrderNotFound
	}

	return order, nil
}

// ListOrders returns orders visible to principal, optionally restricted to
// one status. An empty status means every status.
func (s *orderService) ListOrders(ctx context.Context, principal models.Principal, status models.OrderStatus) ([]models.Order, error) {
	filter := models.OrderFilter{Status: status}
	if !principal.IsAdmin() {
		filter.CreatedBy = principal.Username
	}

	orders, err := s.orderRepository.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing orders failed: %w", err)
	}

	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	order, err := s.orderRepository.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, mapOrderError(err)
	}

	logger.FromContext(ctx).Info().
		Int64("order_id", id).
		Str("status", string(status)).
		Msg("order status changed")
	return order, nil
}

func (s *orderService) Stats(ctx context.Context) (models.OrderStats, error) {
	stats, err := s.orderRepository.OrderStats(ctx)
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("collecting order stats failed: %w", err)
	}

	return stats, nil
}

func mapOrderError(err error) error {
	if errors.Is(err, store.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}
