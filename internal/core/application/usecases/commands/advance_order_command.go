package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step along its forward chain.
type AdvanceOrderCommand struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(actor user.Actor, orderID kernel.UUID) (AdvanceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return AdvanceOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Actor() user.Actor    { return c.actor }
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }
