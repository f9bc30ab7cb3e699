package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add stores the order and all its items in the current transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status and updated_at. Items are immutable and never
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends, so
	// concurrent transitions of one order run one after another.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
