package queries

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

type CartView struct {
	Lines []CartLineView
	Total kernel.Money
}

type CartLineView struct {
	ItemID       kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	Subtotal     kernel.Money
	Instructions string
}

// NewCartView maps a cart to its response shape. Command responses share it.
func NewCartView(c *cart.Cart) CartView {
	lines := c.Lines()
	view := CartView{Lines: make([]CartLineView, 0, len(lines)), Total: c.Total()}
	for _, l := range lines {
		view.Lines = append(view.Lines, CartLineView{
			ItemID:       l.ItemID,
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Subtotal:     l.Subtotal(),
			Instructions: l.Instructions,
		})
	}
	return view
}

type GetCartQueryHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewGetCartQueryHandler(carts ports.CartStore, policy services.AccessPolicy) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, policy: policy}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ManageOwnCart); err != nil {
		return CartView{}, err
	}

	c, err := h.carts.Load(ctx, query.Actor().UserID)
	if err != nil {
		return CartView{}, err
	}
	return NewCartView(c), nil
}
