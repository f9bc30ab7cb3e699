package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand assigns a role to a user profile.
type ChangeUserRoleCommand struct {
	actor  user.Actor
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand parses role strictly: unknown names are a
// validation error, never a default role.
func NewChangeUserRoleCommand(actor user.Actor, userID kernel.UUID, role string) (ChangeUserRoleCommand, error) {
	var idErr error
	if err := userID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	parsed, roleErr := user.ParseRole(role)

	if err := errors.Join(idErr, roleErr); err != nil {
		return ChangeUserRoleCommand{}, errs.NewValidationError(err)
	}
	return ChangeUserRoleCommand{
		actor:  actor,
		userID: userID,
		role:   parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) Actor() user.Actor   { return c.actor }
func (c ChangeUserRoleCommand) UserID() kernel.UUID { return c.userID }
func (c ChangeUserRoleCommand) Role() user.Role     { return c.role }
