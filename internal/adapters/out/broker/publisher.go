// Package broker relays outbox messages to Kafka. Messages are keyed by
// aggregate id so every event of one order lands on the same partition in
// the order it was recorded.
package broker

import (
	"context"
	"time"

	"restaurant/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventName = "event_name"
)

// messageWriter is satisfied by *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewKafkaWriter builds a writer that waits for all in-sync replicas, so a
// batch is acknowledged only once it is durable.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// Publish writes the batch in one call. Either every message is acknowledged
// or an error is returned and the caller keeps them unpublished.
func (p *KafkaPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: HeaderEventID, Value: []byte(m.ID.String())},
				{Key: HeaderEventName, Value: []byte(m.Name)},
			},
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}
