package ports

import (
	"context"

	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
)

// LotRepository defines the persistence contract for lots and their stock movements.
type LotRepository interface {
	Add(ctx context.Context, aggregate *inventory.Lot) error
	Update(ctx context.Context, aggregate *inventory.Lot) error
	Get(ctx context.Context, id kernel.UUID) (*inventory.Lot, error)

	// GetForUpdate retrieves a lot and locks its row, so that concurrent debits can never
	// drive the remaining quantity negative.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Lot, error)

	// AddMovement persists an immutable stock movement.
	AddMovement(ctx context.Context, movement *inventory.StockMovement) error
}

// StockItemRepository defines the persistence contract for the steel bar catalogue.
type StockItemRepository interface {
	// Add persists a new stock item.
	// Returns errs.DuplicateIdentifierError when alloy and diameter are already catalogued.
	Add(ctx context.Context, aggregate *inventory.StockItem) error

	Get(ctx context.Context, id kernel.UUID) (*inventory.StockItem, error)
}
