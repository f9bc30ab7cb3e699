package user

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

// Actor is the authenticated caller of an operation, as supplied by the
// authentication provider. The pair is trusted as is.
type Actor struct {
	UserID kernel.UUID
	Role   Role
}

// NewActor validates both parts of the identity.
func NewActor(userID kernel.UUID, role Role) (Actor, error) {
	a := Actor{UserID: userID, Role: role}
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}
	return a, nil
}

func (a Actor) Validate() error {
	return errors.Join(a.UserID.Validate(), a.Role.Validate())
}
