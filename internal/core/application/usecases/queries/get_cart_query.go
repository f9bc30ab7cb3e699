package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

// GetCartQuery reads the calling customer's cart.
type GetCartQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor user.Actor) GetCartQuery {
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Actor() user.Actor { return q.actor }
