package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New("GetMenuQuery must be created via NewGetMenuQuery constructor")

type GetMenuQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(actor user.Actor) GetMenuQuery {
	return GetMenuQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) Actor() user.Actor { return q.actor }
