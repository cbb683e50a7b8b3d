package ports

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event serialised for publication.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges messages written by the unit of work on commit.
type OutboxRepository interface {
	// GetUnpublished returns up to limit unpublished messages in creation order and locks
	// them, skipping rows locked by another relay.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished flags the messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
