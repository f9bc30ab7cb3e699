package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
)

// CreateCategoryCommandHandler stores new menu categories for administrators.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory, policy services.AccessPolicy) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageMenu); err != nil {
		return err
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.DisplayOrder())
	if err != nil {
		return validation(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
