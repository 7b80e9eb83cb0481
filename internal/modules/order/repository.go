package order

import (
	"context"

	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/google/uuid"
)

// ListFilter narrows order listings.
type ListFilter struct {
	// UserID restricts results to one customer's orders.
	UserID *uuid.UUID
	// Status restricts results to one lifecycle state.
	Status OrderStatus
}

// Repository defines data access for orders. The configuration reads are
// deliberately narrow queries against the settings/stock/schedules tables.
type Repository interface {
	// GetPricingConfig reads the settings singleton and its price tiers.
	GetPricingConfig(ctx context.Context) (*PricingConfig, error)

	// GetStockCount reads the current available maple count.
	GetStockCount(ctx context.Context) (int, error)

	// GetSchedule retrieves one schedule by id.
	GetSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error)

	// CreateOrder atomically re-checks stock under a row lock, decrements it
	// and inserts the order. Insufficient stock aborts with a conflict and no
	// writes.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its author and schedule resolved.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListOrders returns orders newest-first, optionally filtered.
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)

	// UpdateStatus changes an order's status and reconciles stock in the same
	// transaction: entering CANCELADO releases the reserved maples, leaving
	// it re-reserves them or conflicts if stock ran out.
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (*Order, error)
}
