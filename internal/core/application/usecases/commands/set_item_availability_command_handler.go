package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

type SetItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

func NewSetItemAvailabilityCommandHandler(
	uowFactory MenuUoWFactory,
	policy services.AccessPolicy,
) SetItemAvailabilityCommandHandler {
	return SetItemAvailabilityCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *SetItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetItemAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageMenu); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	item, err := repo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item.SetAvailability(cmd.Available())
	if err = repo.UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
