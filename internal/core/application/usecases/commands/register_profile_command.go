package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrRegisterProfileCommandIsNotConstructed = errors.New(
	"RegisterProfileCommand must be created via NewRegisterProfileCommand constructor",
)

// RegisterProfileCommand creates the profile of the authenticated caller.
// New profiles always start as clients.
type RegisterProfileCommand struct {
	actor   user.Actor
	contact user.Contact

	guard guard.ConstructorGuard
}

func NewRegisterProfileCommand(actor user.Actor, contact user.Contact) RegisterProfileCommand {
	return RegisterProfileCommand{actor: actor, contact: contact, guard: guard.NewConstructorGuard()}
}

func (c RegisterProfileCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProfileCommandIsNotConstructed)
}

func (c RegisterProfileCommand) Actor() user.Actor     { return c.actor }
func (c RegisterProfileCommand) Contact() user.Contact { return c.contact }
