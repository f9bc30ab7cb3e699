// Package cart models the transient, session scoped selection a customer
// builds before submitting an order.
package cart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrItemUnavailable is returned when adding a menu item whose availability flag is off.
	ErrItemUnavailable = errors.New("item is unavailable")

	// ErrEmptyCart is returned when submitting a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")
)

// MaxInstructionsLength bounds the free text attached to one line.
const MaxInstructionsLength = 500

// Line is one distinct menu item in the cart. UnitPrice is captured when the
// item is first added and never re-read while the cart lives.
type Line struct {
	ItemID       kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	Instructions string
}

// Subtotal returns Quantity × UnitPrice.
func (l Line) Subtotal() kernel.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart is owned by a single customer session and is passed explicitly to the
// operations that use it. It holds at most one line per menu item.
type Cart struct {
	customerID kernel.UUID
	lines      []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for customerID.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	return &Cart{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// RestoreCart rebuilds a cart from a session snapshot.
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if err = validateLine(l); err != nil {
			return nil, err
		}
		key := l.ItemID.String()
		if _, dup := seen[key]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("item %s appears twice", key))
		}
		seen[key] = struct{}{}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

// Validate ensures the cart went through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// CustomerID returns the owner of the cart.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds one unit of item. An item already in the cart has its quantity
// incremented and keeps the price captured on first addition; a new item is
// appended with quantity 1 at its current price. Unavailable items are
// rejected with ErrItemUnavailable and leave the cart unchanged.
func (c *Cart) AddItem(item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name())
	}

	if i := c.indexOf(item.ID()); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, Line{
		ItemID:    item.ID(),
		Name:      item.Name(),
		Quantity:  1,
		UnitPrice: item.Price(),
	})
	return nil
}

// SetInstructions attaches special instructions to the line of itemID.
func (c *Cart) SetInstructions(itemID kernel.UUID, instructions string) error {
	instructions = strings.TrimSpace(instructions)
	if len(instructions) > MaxInstructionsLength {
		return errs.NewValueIsOutOfRangeError("instructions", len(instructions), 0, MaxInstructionsLength)
	}

	i := c.indexOf(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", itemID.String())
	}
	c.lines[i].Instructions = instructions
	return nil
}

// Total returns Σ quantity × unit price using exact decimal arithmetic.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear removes every line. It is called once the cart became an order.
func (c *Cart) Clear() {
	c.lines = nil
}

// indexOf returns the position of the line for itemID, or -1.
func (c *Cart) indexOf(itemID kernel.UUID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool {
		return l.ItemID.IsEqual(itemID)
	})
}

func validateLine(l Line) error {
	var quantityErr error
	if l.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	var instructionsErr error
	if len(l.Instructions) > MaxInstructionsLength {
		instructionsErr = errs.NewValueIsOutOfRangeError("instructions", len(l.Instructions), 0, MaxInstructionsLength)
	}
	return errors.Join(
		l.ItemID.Validate(),
		l.UnitPrice.Validate(),
		quantityErr,
		instructionsErr,
	)
}
