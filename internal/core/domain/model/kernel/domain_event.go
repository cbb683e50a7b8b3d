package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a business operation.
// Events are persisted to the outbox inside the same transaction as the aggregate.
type DomainEvent interface {
	EventID() UUID
	EventType() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// BaseEvent carries the envelope fields shared by all domain events.
// Concrete events embed it and add their payload as exported fields.
type BaseEvent struct {
	ID        UUID      `json:"event_id"`
	Type      string    `json:"event_type"`
	Aggregate UUID      `json:"aggregate_id"`
	Occurred  time.Time `json:"occurred_at"`
}

func NewBaseEvent(eventType string, aggregateID UUID, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		ID:        NewUUID(),
		Type:      eventType,
		Aggregate: aggregateID,
		Occurred:  occurredAt.UTC(),
	}
}

func (e BaseEvent) EventID() UUID         { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() UUID     { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.Occurred }

// EventRecorder is embedded by aggregates that publish domain events.
type EventRecorder struct {
	events []DomainEvent
}

// RecordEvent appends an event to the pending list.
func (r *EventRecorder) RecordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops pending events once they were handed to the outbox.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
