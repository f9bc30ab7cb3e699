package commands

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
	"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
)

// RelayOrderEventsCommand publishes one batch of stored order events. It is
// issued by the outbox job, not by users.
type RelayOrderEventsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOrderEventsCommand(batchSize int) (RelayOrderEventsCommand, error) {
	if batchSize <= 0 || batchSize > 1000 {
		return RelayOrderEventsCommand{}, errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, 1000)
	}
	return RelayOrderEventsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int { return c.batchSize }
