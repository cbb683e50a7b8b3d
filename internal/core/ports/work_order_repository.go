package ports

import (
	"context"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work orders and their operations.
type WorkOrderRepository interface {
	// Add persists a new work order together with all of its operations.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists the work order fields and the runtime fields of its operations.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetForUpdate retrieves a work order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetByOperationForUpdate retrieves and locks the work order owning the operation.
	// Locking the parent serialises all transitions of sibling operations, which closes the
	// race between the sequence dependency check and the status write.
	GetByOperationForUpdate(ctx context.Context, operationID kernel.UUID) (*workorder.WorkOrder, error)

	// CountByProductionOrder returns the number of work orders of a production order.
	CountByProductionOrder(ctx context.Context, productionOrderID kernel.UUID) (int64, error)

	// HasOperationsAtWorkCenter reports whether any operation references the work center.
	// When statuses are given only operations in one of them are considered.
	HasOperationsAtWorkCenter(
		ctx context.Context,
		workCenterID kernel.UUID,
		statuses ...workorder.OperationStatus,
	) (bool, error)
}
