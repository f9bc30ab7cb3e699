package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a command. The unit of
// work stores pending events in the outbox in the same transaction as the
// aggregate itself.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
