package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrChangeItemPriceCommandIsNotConstructed = errors.New(
	"ChangeItemPriceCommand must be created via NewChangeItemPriceCommand constructor",
)

// ChangeItemPriceCommand sets a new menu price. Carts keep the price captured
// when the item was added and submitted orders keep their frozen prices.
type ChangeItemPriceCommand struct {
	actor  user.Actor
	itemID kernel.UUID
	price  string

	guard guard.ConstructorGuard
}

func NewChangeItemPriceCommand(actor user.Actor, itemID kernel.UUID, price string) (ChangeItemPriceCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ChangeItemPriceCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return ChangeItemPriceCommand{
		actor:  actor,
		itemID: itemID,
		price:  price,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemPriceCommandIsNotConstructed)
}

func (c ChangeItemPriceCommand) Actor() user.Actor   { return c.actor }
func (c ChangeItemPriceCommand) ItemID() kernel.UUID { return c.itemID }
func (c ChangeItemPriceCommand) Price() string       { return c.price }
