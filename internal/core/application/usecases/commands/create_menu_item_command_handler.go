package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateMenuItemCommandHandler validates and stores a new menu item.
//
// Every invalid field is reported in one errs.ValidationError, including a
// category_id that does not reference an existing category.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory, policy services.AccessPolicy) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory, policy: policy}
}

func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageMenu); err != nil {
		return err
	}

	price, priceErr := parsePrice(cmd.Price())

	item, itemErr := menu.NewItem(cmd.ItemID(), cmd.CategoryID(), menu.ItemDetails{
		Name:               cmd.Name(),
		Description:        cmd.Description(),
		Price:              price,
		PreparationMinutes: cmd.PreparationMinutes(),
		Allergens:          cmd.Allergens(),
	})

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()

	var categoryErr error
	if cmd.CategoryID().Validate() == nil {
		_, categoryErr = repo.GetCategory(ctx, cmd.CategoryID())
		switch {
		case errors.Is(categoryErr, errs.ErrObjectNotFound):
			categoryErr = errs.NewValueIsInvalidErrorWithCause("category_id", categoryErr)
		case categoryErr != nil:
			return categoryErr
		}
	}

	if err := errors.Join(priceErr, itemErr, categoryErr); err != nil {
		return validation(err)
	}

	if err := repo.AddItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
