package queries

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrListWorkOrderOperationsQueryIsNotConstructed = errors.New(
	"ListWorkOrderOperationsQuery must be created via NewListWorkOrderOperationsQuery constructor",
)

// ListWorkOrderOperationsQuery lists the operations of one work order in sequence order.
type ListWorkOrderOperationsQuery struct {
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListWorkOrderOperationsQuery(workOrderID kernel.UUID) (ListWorkOrderOperationsQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return ListWorkOrderOperationsQuery{}, err
	}
	return ListWorkOrderOperationsQuery{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkOrderOperationsQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrderOperationsQueryIsNotConstructed)
}

func (q ListWorkOrderOperationsQuery) WorkOrderID() kernel.UUID { return q.workOrderID }
