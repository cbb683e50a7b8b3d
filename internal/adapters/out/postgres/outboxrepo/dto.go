// Package outboxrepo stores domain events for asynchronous publication (transactional outbox).
package outboxrepo

import (
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one serialised domain event.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(100);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index:idx_outbox_pending,priority:2"`
	PublishedAt *time.Time `gorm:"index:idx_outbox_pending,priority:1"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromMessage(m ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          m.ID.Bytes(),
		AggregateID: m.AggregateID.Bytes(),
		EventType:   m.EventType,
		Payload:     string(m.Payload),
		OccurredAt:  m.OccurredAt,
	}
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
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
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
