package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a category to the menu.
//
// Example:
//
//	cmd, err := NewCreateCategoryCommand(actor, kernel.NewUUID(), "Pizzas", "Wood fired", 1)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrForbidden) {
//	    // only administrators edit the catalog
//	}
type CreateCategoryCommand struct {
	actor        user.Actor
	categoryID   kernel.UUID
	name         string
	description  string
	displayOrder int

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand checks the identifier only; field rules belong to
// menu.NewCategory and are reported after the caller is authorized.
func NewCreateCategoryCommand(
	actor user.Actor,
	categoryID kernel.UUID,
	name, description string,
	displayOrder int,
) (CreateCategoryCommand, error) {
	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return CreateCategoryCommand{
		actor:        actor,
		categoryID:   categoryID,
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Actor() user.Actor       { return c.actor }
func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c CreateCategoryCommand) Name() string            { return c.name }
func (c CreateCategoryCommand) Description() string     { return c.description }
func (c CreateCategoryCommand) DisplayOrder() int       { return c.displayOrder }
