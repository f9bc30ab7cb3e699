package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand adds one unit of a menu item to the actor's own cart.
type AddToCartCommand struct {
	actor  user.Actor
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(actor user.Actor, itemID kernel.UUID) (AddToCartCommand, error) {
	if err := itemID.Validate(); err != nil {
		return AddToCartCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("item_id", err))
	}
	return AddToCartCommand{actor: actor, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) Actor() user.Actor   { return c.actor }
func (c AddToCartCommand) ItemID() kernel.UUID { return c.itemID }
