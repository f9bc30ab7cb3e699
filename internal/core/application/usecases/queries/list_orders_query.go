package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders visible to the actor: every order for staff,
// the actor's own orders for customers. An empty status lists all statuses.
type ListOrdersQuery struct {
	actor  user.Actor
	status order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor user.Actor, status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	s, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, errs.NewValidationError(err)
	}
	q.status = s
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor { return q.actor }

// Status returns the filter, order.Unknown when none was given.
func (q ListOrdersQuery) Status() order.Status { return q.status }
