package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned by Validate for an Item built without NewItem.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem or RestoreItem")

// Item is one line of a submitted order. Its unit price is frozen at
// submission and the item is never mutated afterwards.
type Item struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	name         string
	quantity     int
	unitPrice    kernel.Money
	instructions string

	guard guard.ConstructorGuard
}

// NewItem creates an order line.
func NewItem(
	id, menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	instructions string,
) (Item, error) {
	item := Item{
		name:         strings.TrimSpace(name),
		instructions: strings.TrimSpace(instructions),
		guard:        guard.NewConstructorGuard(),
	}

	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	var nameErr error
	if item.name == "" {
		nameErr = errs.NewValueIsRequiredError("item_name")
	}
	var priceErr error
	if err := unitPrice.Validate(); err != nil {
		priceErr = errs.NewValueIsRequiredErrorWithCause("unit_price", err)
	}
	var idErr error
	if err := id.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("item_id", err)
	}
	var menuItemErr error
	if err := menuItemID.Validate(); err != nil {
		menuItemErr = errs.NewValueIsRequiredErrorWithCause("menu_item_id", err)
	}

	if err := errors.Join(idErr, menuItemErr, nameErr, quantityErr, priceErr); err != nil {
		return Item{}, err
	}

	item.id = id
	item.menuItemID = menuItemID
	item.quantity = quantity
	item.unitPrice = unitPrice
	return item, nil
}

// RestoreItem rebuilds an order line read back from storage.
func RestoreItem(
	id, menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	instructions string,
) (Item, error) {
	return NewItem(id, menuItemID, name, quantity, unitPrice, instructions)
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the order line identifier.
func (i Item) ID() kernel.UUID { return i.id }

// MenuItemID returns the menu item the line was ordered from.
func (i Item) MenuItemID() kernel.UUID { return i.menuItemID }

// Name returns the item name as it read at submission.
func (i Item) Name() string { return i.name }

// Quantity returns the number of portions.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price frozen at submission.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Instructions returns the special instructions for the kitchen.
func (i Item) Instructions() string { return i.instructions }

// Subtotal returns quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}
