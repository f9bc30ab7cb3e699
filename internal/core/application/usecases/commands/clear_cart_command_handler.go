package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

type ClearCartCommandHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewClearCartCommandHandler(carts ports.CartStore, policy services.AccessPolicy) ClearCartCommandHandler {
	return ClearCartCommandHandler{carts: carts, policy: policy}
}

func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageOwnCart); err != nil {
		return err
	}
	return h.carts.Delete(ctx, cmd.Actor().UserID)
}
