package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand turns the actor's cart into a pending order.
type SubmitOrderCommand struct {
	actor    user.Actor
	orderID  kernel.UUID
	tableRef string
	notes    string

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(actor user.Actor, orderID kernel.UUID, tableRef, notes string) (SubmitOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return SubmitOrderCommand{
		actor:    actor,
		orderID:  orderID,
		tableRef: tableRef,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Actor() user.Actor    { return c.actor }
func (c SubmitOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c SubmitOrderCommand) TableRef() string     { return c.tableRef }
func (c SubmitOrderCommand) Notes() string        { return c.notes }
