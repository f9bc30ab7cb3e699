package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New("ListUsersQuery must be created via NewListUsersQuery constructor")

type ListUsersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor user.Actor) ListUsersQuery {
	return ListUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() user.Actor { return q.actor }
