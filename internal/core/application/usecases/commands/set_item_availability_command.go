package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSetItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetItemAvailabilityCommand must be created via NewSetItemAvailabilityCommand constructor",
)

// SetItemAvailabilityCommand toggles whether an item can be added to carts.
type SetItemAvailabilityCommand struct {
	actor     user.Actor
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetItemAvailabilityCommand(actor user.Actor, itemID kernel.UUID, available bool) (SetItemAvailabilityCommand, error) {
	if err := itemID.Validate(); err != nil {
		return SetItemAvailabilityCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	return SetItemAvailabilityCommand{
		actor:     actor,
		itemID:    itemID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetItemAvailabilityCommandIsNotConstructed)
}

func (c SetItemAvailabilityCommand) Actor() user.Actor   { return c.actor }
func (c SetItemAvailabilityCommand) ItemID() kernel.UUID { return c.itemID }
func (c SetItemAvailabilityCommand) Available() bool     { return c.available }
