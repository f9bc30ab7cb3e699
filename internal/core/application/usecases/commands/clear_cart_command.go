package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand abandons the actor's cart.
type ClearCartCommand struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewClearCartCommand(actor user.Actor) ClearCartCommand {
	return ClearCartCommand{actor: actor, guard: guard.NewConstructorGuard()}
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Actor() user.Actor { return c.actor }
