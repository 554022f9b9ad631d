// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderServed    OrderStatus = "SERVED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderServed, OrderCancelled}

// ParseOrderStatus converts a case-insensitive string into an [OrderStatus].
// The second return value is false for unknown statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range OrderStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// Order is a customer order. Items holds the raw JSON array of ordered
// items as submitted by the client.
type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Total        int64           `json:"total"`
	Items        json.RawMessage `json:"items"`
	Status       OrderStatus     `json:"status"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	// Status limits the result to one lifecycle state when non-empty.
	Status OrderStatus

	// CreatedBy limits the result to orders of one account when non-empty.
	CreatedBy string
}

// OrderStats aggregates orders per status.
type OrderStats struct {
	Total         int64                 `json:"total"`
	ByStatus      map[OrderStatus]int64 `json:"by_status"`
	ServedRevenue int64                 `json:"served_revenue"`
}
