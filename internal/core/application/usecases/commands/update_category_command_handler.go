package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

type UpdateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateCategoryCommandHandler(uowFactory MenuUoWFactory, policy services.AccessPolicy) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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
	category, err := repo.GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = category.Update(cmd.Name(), cmd.Description(), cmd.DisplayOrder()); err != nil {
		return validation(err)
	}
	if cmd.Active() {
		category.Activate()
	} else {
		category.Deactivate()
	}

	if err = repo.UpdateCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
