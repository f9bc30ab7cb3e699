package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand renames, reorders and (de)activates a category.
// Categories are never deleted; deactivation hides them from the menu.
type UpdateCategoryCommand struct {
	actor        user.Actor
	categoryID   kernel.UUID
	name         string
	description  string
	displayOrder int
	active       bool

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(
	actor user.Actor,
	categoryID kernel.UUID,
	name, description string,
	displayOrder int,
	active bool,
) (UpdateCategoryCommand, error) {
	if err := categoryID.Validate(); err != nil {
		return UpdateCategoryCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return UpdateCategoryCommand{
		actor:        actor,
		categoryID:   categoryID,
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) Actor() user.Actor       { return c.actor }
func (c UpdateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c UpdateCategoryCommand) Name() string            { return c.name }
func (c UpdateCategoryCommand) Description() string     { return c.description }
func (c UpdateCategoryCommand) DisplayOrder() int       { return c.displayOrder }
func (c UpdateCategoryCommand) Active() bool            { return c.active }
