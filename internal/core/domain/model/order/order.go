package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	MaxTableRefLength = 32
	MaxNotesLength    = 1000
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrderFromCart or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrderFromCart or RestoreOrder")

// Order is the aggregate root of the ordering lifecycle.
//
// Order follows these invariants:
//   - It is created Pending with at least one item
//   - Items and their unit prices never change after creation
//   - Total is always derived from the items
//   - Status only moves through Advance and Cancel, and every applied
//     transition updates updatedAt; a rejected one changes nothing
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	tableRef   string
	notes      string
	items      []Item
	createdAt  time.Time
	updatedAt  time.Time

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrderFromCart freezes the lines of c into a new Pending order. Each item
// copies the unit price captured by the cart. An empty cart yields
// cart.ErrEmptyCart. The cart itself is left untouched; callers clear it once
// the order is stored.
func NewOrderFromCart(id kernel.UUID, c *cart.Cart, tableRef, notes string, now time.Time) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrEmptyCart
	}

	lines := c.Lines()
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		item, err := NewItem(kernel.NewUUID(), l.ItemID, l.Name, l.Quantity, l.UnitPrice, l.Instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := build(id, c.CustomerID(), Pending, tableRef, notes, items, now, now)
	if err != nil {
		return nil, err
	}
	o.raise(newSubmittedEvent(o))
	return o, nil
}

// RestoreOrder rebuilds an order read back from storage.
func RestoreOrder(
	id, customerID kernel.UUID,
	status Status,
	tableRef, notes string,
	items []Item,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	return build(id, customerID, status, tableRef, notes, items, createdAt, updatedAt)
}

func build(
	id, customerID kernel.UUID,
	status Status,
	tableRef, notes string,
	items []Item,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			itemsErr = errors.Join(itemsErr, err)
		}
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setTableRef(tableRef),
		o.setNotes(notes),
		itemsErr,
	); err != nil {
		return nil, err
	}

	o.items = slices.Clone(items)
	return o, nil
}

// Validate ensures the order went through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ID of the client who placed the order.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TableRef returns the table the order is served to.
func (o *Order) TableRef() string { return o.tableRef }

// Notes returns the free-text notes given at submission.
// Returns an empty string if none were given.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last applied transition.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// IsOwnedBy reports whether customerID placed the order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Total returns Σ quantity × unit price over the items.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Advance moves the order to the next status of the forward chain.
//
// This method enforces the following business rules:
//   - Pending, Confirmed, InPreparation, Ready and Served each have one successor
//   - Paid and Cancelled orders cannot advance
//   - An applied transition records a StatusChanged event and sets UpdatedAt
//
// Parameters:
//   - now: The time of the transition
//
// Returns:
//   - nil when the order moved to its next status
//   - ErrInvalidTransition if the order is Paid or Cancelled
//
// Example:
//
//	if err := o.Advance(time.Now()); err != nil {
//	    // The order is already closed
//	}
//
// A rejected call leaves the order unchanged.
func (o *Order) Advance(now time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	o.transition(next, now)
	return nil
}

// Cancel moves a non-terminal order to Cancelled.
//
// This method enforces the following business rules:
//   - Any status before Paid may be cancelled
//   - Cancelling a Cancelled order is a no-op
//   - A Paid order cannot be cancelled
//
// Parameters:
//   - now: The time of the transition
//
// Returns:
//   - true, nil when the order was cancelled by this call
//   - false, nil when the order was already Cancelled
//   - false, ErrInvalidTransition if the order is Paid
//
// Example:
//
//	changed, err := o.Cancel(time.Now())
//	if err != nil {
//	    // Paid orders stay paid
//	}
//	if changed {
//	    // Persist and notify
//	}
//
// Only a call that reports true records a StatusChanged event.
func (o *Order) Cancel(now time.Time) (bool, error) {
	if o.status == Cancelled {
		return false, nil
	}
	next, err := o.status.Cancel()
	if err != nil {
		return false, err
	}
	o.transition(next, now)
	return true, nil
}

// DomainEvents returns the events recorded since the order was loaded.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops recorded events once they are stored.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) transition(next Status, now time.Time) {
	from := o.status
	o.status = next
	o.updatedAt = now.UTC()
	o.raise(newStatusChangedEvent(o, from))
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTableRef(tableRef string) error {
	tableRef = strings.TrimSpace(tableRef)
	if len(tableRef) > MaxTableRefLength {
		return errs.NewValueIsOutOfRangeError("table_ref", len(tableRef), 0, MaxTableRefLength)
	}
	o.tableRef = tableRef
	return nil
}

func (o *Order) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes", len(notes), 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}
