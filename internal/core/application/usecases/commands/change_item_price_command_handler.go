package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

type ChangeItemPriceCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

func NewChangeItemPriceCommandHandler(uowFactory MenuUoWFactory, policy services.AccessPolicy) ChangeItemPriceCommandHandler {
	return ChangeItemPriceCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *ChangeItemPriceCommandHandler) Handle(ctx context.Context, cmd ChangeItemPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageMenu); err != nil {
		return err
	}

	price, err := parsePrice(cmd.Price())
	if err != nil {
		return errs.NewValidationError(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = item.ChangePrice(price); err != nil {
		return validation(err)
	}
	if err = repo.UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
