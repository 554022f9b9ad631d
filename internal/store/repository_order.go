package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	dest, finish := orderDest(&created)
	if err := r.db.queryRow(ctx, buildCreateOrderQuery(r.db.builder, order), nil, dest...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error creating order")
		return models.Order{}, err
	}
	finish()

	return created, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order
	dest, finish := orderDest(&order)
	if err := r.db.queryRow(ctx, buildGetOrderQuery(r.db.builder, id), ErrOrderNotFound, dest...); err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.GetOrder").Int64("id", id).Msg("error getting order")
		}
		return models.Order{}, err
	}
	finish()

	return order, nil
}

// ListOrders returns the orders matching filter, newest first.
func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(r.db.builder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.ListOrders").
			Str("status", string(filter.Status)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 16)
	for rows.Next() {
		var o models.Order
		dest, finish := orderDest(&o)
		if err = rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		finish()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	dest, finish := orderDest(&order)
	if err := r.db.queryRow(ctx, buildUpdateOrderStatusQuery(r.db.builder, id, status), ErrOrderNotFound, dest...); err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "*orderRepository.UpdateOrderStatus").
				Int64("id", id).
				Str("status", string(status)).
				Msg("error updating order status")
		}
		return models.Order{}, err
	}
	finish()

	return order, nil
}

// OrderStats counts orders per status. Every known status is present in
// the result, with zero when there are no such orders.
func (r *orderRepository) OrderStats(ctx context.Context) (models.OrderStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOrderStatsQuery(r.db.builder).ToSql()
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.OrderStats").Msg("failed to execute query")
		return models.OrderStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := models.OrderStats{ByStatus: make(map[models.OrderStatus]int64, len(models.OrderStatuses))}
	for _, s := range models.OrderStatuses {
		stats.ByStatus[s] = 0
	}

	for rows.Next() {
		var (
			status string
			count  int64
			sum    int64
		)
		if err = rows.Scan(&status, &count, &sum); err != nil {
			log.Err(err).Str("func", "*orderRepository.OrderStats").Msg("failed to scan stats row")
			return models.OrderStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		stats.ByStatus[models.OrderStatus(status)] = count
		stats.Total += count
		if models.OrderStatus(status) == models.OrderServed {
			stats.ServedRevenue = sum
		}
	}

	if err = rows.Err(); err != nil {
		return models.OrderStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// orderDest lists scan targets in [orderColumns] order. finish must be
// called after a successful scan to copy the raw items into o.
func orderDest(o *models.Order) (dest []any, finish func()) {
	var items []byte
	dest = []any{
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Total,
		&items, (*string)(&o.Status), &o.CreatedBy, scanTime{&o.CreatedAt},
	}
	return dest, func() { o.Items = items }
}
