package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSetCartInstructionsCommandIsNotConstructed = errors.New(
	"SetCartInstructionsCommand must be created via NewSetCartInstructionsCommand constructor",
)

// SetCartInstructionsCommand attaches special instructions ("no onions") to
// one line of the actor's cart. They are copied into the order item on submit.
type SetCartInstructionsCommand struct {
	actor        user.Actor
	itemID       kernel.UUID
	instructions string

	guard guard.ConstructorGuard
}

func NewSetCartInstructionsCommand(
	actor user.Actor,
	itemID kernel.UUID,
	instructions string,
) (SetCartInstructionsCommand, error) {
	if err := itemID.Validate(); err != nil {
		return SetCartInstructionsCommand{}, errs.NewValidationError(errs.NewValueIsRequiredErrorWithCause("item_id", err))
	}
	return SetCartInstructionsCommand{
		actor:        actor,
		itemID:       itemID,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetCartInstructionsCommand) Validate() error {
	return c.guard.Validate(ErrSetCartInstructionsCommandIsNotConstructed)
}

func (c SetCartInstructionsCommand) Actor() user.Actor    { return c.actor }
func (c SetCartInstructionsCommand) ItemID() kernel.UUID  { return c.itemID }
func (c SetCartInstructionsCommand) Instructions() string { return c.instructions }
