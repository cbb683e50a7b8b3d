package ports

import (
	"context"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workcenter"
)

// WorkCenterRepository defines the persistence contract for work centers.
type WorkCenterRepository interface {
	Add(ctx context.Context, aggregate *workcenter.WorkCenter) error
	Update(ctx context.Context, aggregate *workcenter.WorkCenter) error
	Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error)

	// GetForUpdate retrieves a work center and locks its row until the transaction ends,
	// so that two operations cannot occupy it concurrently.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error)

	// GetAllBusy retrieves every work center in Busy status.
	GetAllBusy(ctx context.Context) ([]*workcenter.WorkCenter, error)

	// Delete removes a work center. The caller checks references first; the foreign key
	// from operations is the last line of protection.
	Delete(ctx context.Context, id kernel.UUID) error
}
