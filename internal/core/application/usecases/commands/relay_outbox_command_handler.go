package commands

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/ports"
)

// RelayOutboxCommandHandler moves committed domain events to the message broker.
//
// The batch stays locked while it is published. When publishing fails the transaction is
// rolled back and the same messages are picked up by the next run, so delivery is at least
// once and consumers must tolerate duplicates.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of published messages.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if err = repo.MarkPublished(ctx, ids, time.Now()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(messages), nil
}
