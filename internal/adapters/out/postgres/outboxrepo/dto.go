// Package outboxrepo stores domain events next to the aggregates that raised
// them so they can be relayed to the broker after the transaction commits.
package outboxrepo

import (
	"encoding/json"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// FromEvent serializes event with encoding/json; events define their own
// MarshalJSON.
func FromEvent(event kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}
	return MessageDTO{
		ID:          event.EventID().Bytes(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID().Bytes(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt().UTC(),
	}, nil
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt.UTC(),
	}, nil
}
