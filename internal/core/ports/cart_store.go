package ports

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
)

// CartStore keeps the session scoped cart of each customer between requests.
// Carts are never written to the relational store.
type CartStore interface {
	// Load returns the customer's cart, or a new empty one when the session
	// has none or it expired.
	Load(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save replaces the stored cart and renews its expiry.
	Save(ctx context.Context, c *cart.Cart) error

	// Update loads the customer's cart, applies fn and stores the result in
	// one optimistic transaction. A concurrent write to the same cart makes
	// Update retry fn on the fresh value. An error from fn aborts without
	// writing and is returned as is.
	Update(ctx context.Context, customerID kernel.UUID, fn func(c *cart.Cart) error) (*cart.Cart, error)

	// Take removes the customer's cart and returns what it held, or a new
	// empty cart. Of two concurrent calls only one receives the lines.
	Take(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Delete removes the customer's cart.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
