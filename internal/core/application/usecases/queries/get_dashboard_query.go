package queries

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery builds the role specific summary for the actor. The
// period is half open, [from, to), and bounds revenue. When both ends are
// zero the current UTC day is used.
type GetDashboardQuery struct {
	actor user.Actor
	from  time.Time
	to    time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(actor user.Actor, from, to time.Time) (GetDashboardQuery, error) {
	if from.IsZero() && to.IsZero() {
		from = time.Now().UTC().Truncate(24 * time.Hour)
		to = from.Add(24 * time.Hour)
	}
	if !to.After(from) {
		return GetDashboardQuery{}, errs.NewValidationError(errs.NewValueIsInvalidErrorWithCause(
			"period", fmt.Errorf("to (%s) must be after from (%s)", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		))
	}
	return GetDashboardQuery{
		actor: actor,
		from:  from.UTC(),
		to:    to.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Actor() user.Actor { return q.actor }
func (q GetDashboardQuery) From() time.Time   { return q.from }
func (q GetDashboardQuery) To() time.Time     { return q.to }
