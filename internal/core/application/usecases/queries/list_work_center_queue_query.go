package queries

import (
	"errors"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/guard"
)

var ErrListWorkCenterQueueQueryIsNotConstructed = errors.New(
	"ListWorkCenterQueueQuery must be created via NewListWorkCenterQueueQuery constructor",
)

// ListWorkCenterQueueQuery lists the operations scheduled on one work center, oldest
// production order first. Without statuses every operation is returned.
//
// Example:
//
//	query, _ := NewListWorkCenterQueueQuery(wcID, workorder.OperationWaiting, workorder.OperationPaused)
//	queue, err := handler.Handle(ctx, query)
type ListWorkCenterQueueQuery struct {
	workCenterID kernel.UUID
	statuses     []workorder.OperationStatus

	guard guard.ConstructorGuard
}

func NewListWorkCenterQueueQuery(
	workCenterID kernel.UUID,
	statuses ...workorder.OperationStatus,
) (ListWorkCenterQueueQuery, error) {
	if err := workCenterID.Validate(); err != nil {
		return ListWorkCenterQueueQuery{}, err
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListWorkCenterQueueQuery{}, err
		}
	}
	return ListWorkCenterQueueQuery{
		workCenterID: workCenterID,
		statuses:     append([]workorder.OperationStatus(nil), statuses...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkCenterQueueQuery) Validate() error {
	return q.guard.Validate(ErrListWorkCenterQueueQueryIsNotConstructed)
}

func (q ListWorkCenterQueueQuery) WorkCenterID() kernel.UUID { return q.workCenterID }

func (q ListWorkCenterQueueQuery) Statuses() []workorder.OperationStatus {
	return append([]workorder.OperationStatus(nil), q.statuses...)
}

// WorkCenterQueueItem is an operation waiting for, running on or finished at a work center.
type WorkCenterQueueItem struct {
	OperationID              kernel.UUID
	WorkOrderID              kernel.UUID
	WorkOrderNumber          string
	ProductionOrderNumber    string
	SequenceNumber           int
	OperationName            string
	Status                   workorder.OperationStatus
	EstimatedDurationMinutes int
	OperatorName             string
	StartedAt                *time.Time
}
