package order

import (
	"encoding/json"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

const (
	SubmittedEventName     = "order.submitted"
	StatusChangedEventName = "order.status_changed"
)

// SubmittedEvent is recorded when a cart becomes a pending order.
type SubmittedEvent struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	total      kernel.Money
	itemCount  int
	occurredAt time.Time
}

func newSubmittedEvent(o *Order) SubmittedEvent {
	return SubmittedEvent{
		id:         kernel.NewUUID(),
		orderID:    o.id,
		customerID: o.customerID,
		total:      o.Total(),
		itemCount:  len(o.items),
		occurredAt: o.createdAt,
	}
}

func (e SubmittedEvent) EventID() kernel.UUID     { return e.id }
func (e SubmittedEvent) EventName() string        { return SubmittedEventName }
func (e SubmittedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e SubmittedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e SubmittedEvent) CustomerID() kernel.UUID  { return e.customerID }
func (e SubmittedEvent) Total() kernel.Money      { return e.total }
func (e SubmittedEvent) ItemCount() int           { return e.itemCount }

func (e SubmittedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    string    `json:"event_id"`
		Name       string    `json:"name"`
		OrderID    string    `json:"order_id"`
		CustomerID string    `json:"customer_id"`
		Total      string    `json:"total"`
		ItemCount  int       `json:"item_count"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.id.String(),
		Name:       SubmittedEventName,
		OrderID:    e.orderID.String(),
		CustomerID: e.customerID.String(),
		Total:      e.total.String(),
		ItemCount:  e.itemCount,
		OccurredAt: e.occurredAt,
	})
}

// StatusChangedEvent is recorded by every applied transition.
type StatusChangedEvent struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	from       Status
	to         Status
	occurredAt time.Time
}

func newStatusChangedEvent(o *Order, from Status) StatusChangedEvent {
	return StatusChangedEvent{
		id:         kernel.NewUUID(),
		orderID:    o.id,
		customerID: o.customerID,
		from:       from,
		to:         o.status,
		occurredAt: o.updatedAt,
	}
}

func (e StatusChangedEvent) EventID() kernel.UUID     { return e.id }
func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e StatusChangedEvent) From() Status             { return e.from }
func (e StatusChangedEvent) To() Status               { return e.to }

func (e StatusChangedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    string    `json:"event_id"`
		Name       string    `json:"name"`
		OrderID    string    `json:"order_id"`
		CustomerID string    `json:"customer_id"`
		From       string    `json:"from"`
		To         string    `json:"to"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.id.String(),
		Name:       StatusChangedEventName,
		OrderID:    e.orderID.String(),
		CustomerID: e.customerID.String(),
		From:       e.from.String(),
		To:         e.to.String(),
		OccurredAt: e.occurredAt,
	})
}
