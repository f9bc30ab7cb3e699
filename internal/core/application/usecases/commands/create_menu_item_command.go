package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish or drink to a category. Price is the raw
// decimal literal from the request; it is parsed by the handler so that a bad
// price is reported together with the other invalid fields.
type CreateMenuItemCommand struct {
	actor              user.Actor
	itemID             kernel.UUID
	categoryID         kernel.UUID
	name               string
	description        string
	price              string
	preparationMinutes int
	allergens          []string

	guard guard.ConstructorGuard
}

// MenuItemInput carries the item fields of CreateMenuItemCommand.
type MenuItemInput struct {
	CategoryID         kernel.UUID
	Name               string
	Description        string
	Price              string
	PreparationMinutes int
	Allergens          []string
}

func NewCreateMenuItemCommand(actor user.Actor, itemID kernel.UUID, in MenuItemInput) (CreateMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return CreateMenuItemCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return CreateMenuItemCommand{
		actor:              actor,
		itemID:             itemID,
		categoryID:         in.CategoryID,
		name:               in.Name,
		description:        in.Description,
		price:              in.Price,
		preparationMinutes: in.PreparationMinutes,
		allergens:          slices.Clone(in.Allergens),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Actor() user.Actor       { return c.actor }
func (c CreateMenuItemCommand) ItemID() kernel.UUID     { return c.itemID }
func (c CreateMenuItemCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c CreateMenuItemCommand) Name() string            { return c.name }
func (c CreateMenuItemCommand) Description() string     { return c.description }
func (c CreateMenuItemCommand) Price() string           { return c.price }
func (c CreateMenuItemCommand) PreparationMinutes() int { return c.preparationMinutes }
func (c CreateMenuItemCommand) Allergens() []string     { return slices.Clone(c.allergens) }
