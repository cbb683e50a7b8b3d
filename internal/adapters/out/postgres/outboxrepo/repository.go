package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append serialises the events to JSON and inserts them as unpublished messages.
func (r *GormOutboxRepository) Append(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, fromMessage(ports.OutboxMessage{
			ID:          event.EventID(),
			AggregateID: event.AggregateID(),
			EventType:   event.EventType(),
			Payload:     payload,
			OccurredAt:  event.OccurredAt(),
		}))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished locks up to limit pending messages, oldest first. Rows already locked by a
// concurrent relay are skipped.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", publishedAt.UTC()).Error
}
