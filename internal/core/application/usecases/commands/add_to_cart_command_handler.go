package commands

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// AddToCartCommandHandler reads the current menu item and adds it to the
// caller's session cart. The cart lives in the session store only; the menu
// read needs no transaction.
//
// Example:
//
//	cmd, _ := NewAddToCartCommand(actor, margheritaID)
//	c, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrItemUnavailable) {
//	    // the cart is unchanged
//	}
type AddToCartCommandHandler struct {
	uowFactory MenuUoWFactory
	carts      ports.CartStore
	policy     services.AccessPolicy
}

func NewAddToCartCommandHandler(
	uowFactory MenuUoWFactory,
	carts ports.CartStore,
	policy services.AccessPolicy,
) AddToCartCommandHandler {
	return AddToCartCommandHandler{uowFactory: uowFactory, carts: carts, policy: policy}
}

func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageOwnCart); err != nil {
		return nil, err
	}

	item, err := h.uowFactory.Create().MenuRepository().GetItem(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	return h.carts.Update(ctx, cmd.Actor().UserID, func(c *cart.Cart) error {
		return c.AddItem(item)
	})
}
