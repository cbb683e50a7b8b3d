package ports

import (
	"context"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
)

// ProductionOrderRepository defines the persistence contract for production orders.
type ProductionOrderRepository interface {
	// Add persists a new production order.
	// Returns errs.DuplicateIdentifierError when the order number is already taken.
	Add(ctx context.Context, aggregate *productionorder.ProductionOrder) error

	Update(ctx context.Context, aggregate *productionorder.ProductionOrder) error

	Get(ctx context.Context, id kernel.UUID) (*productionorder.ProductionOrder, error)

	// GetForUpdate retrieves a production order and locks its row. Expansion uses it so
	// that two concurrent expansions of the same order are serialised.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*productionorder.ProductionOrder, error)

	// LatestOrderNumber returns the order number of the die with the highest sequence after
	// prefix, or an empty string when the die has no orders yet. Longer numbers rank higher,
	// so UE-1100-1000 follows UE-1100-999.
	LatestOrderNumber(ctx context.Context, dieID kernel.UUID, prefix string) (string, error)
}
