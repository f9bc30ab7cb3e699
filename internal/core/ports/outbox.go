package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored for asynchronous delivery.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events. Events are written
// by the unit of work when it commits tracked aggregates.
type OutboxRepository interface {
	// GetUnpublished locks and returns up to limit unpublished messages, oldest
	// first. Rows locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
