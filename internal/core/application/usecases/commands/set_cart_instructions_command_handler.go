package commands

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

type SetCartInstructionsCommandHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewSetCartInstructionsCommandHandler(
	carts ports.CartStore,
	policy services.AccessPolicy,
) SetCartInstructionsCommandHandler {
	return SetCartInstructionsCommandHandler{carts: carts, policy: policy}
}

func (h *SetCartInstructionsCommandHandler) Handle(ctx context.Context, cmd SetCartInstructionsCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageOwnCart); err != nil {
		return nil, err
	}

	c, err := h.carts.Update(ctx, cmd.Actor().UserID, func(c *cart.Cart) error {
		return c.SetInstructions(cmd.ItemID(), cmd.Instructions())
	})
	if err != nil {
		return nil, validation(err)
	}
	return c, nil
}
