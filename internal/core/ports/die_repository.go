// Package ports defines the contracts between the die tracking core and its infrastructure:
// repositories per aggregate, the unit of work that binds them to one transaction, and the
// outbound event publisher.
package ports

import (
	"context"

	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/kernel"
)

// DieRepository defines the persistence contract for die aggregates and their components.
type DieRepository interface {
	// Add persists a new die with its components.
	// Returns errs.DuplicateIdentifierError when the die number is taken.
	Add(ctx context.Context, aggregate *die.Die) error

	// Update persists status changes and newly added components.
	Update(ctx context.Context, aggregate *die.Die) error

	// Get retrieves a die with its components ordered by position.
	Get(ctx context.Context, id kernel.UUID) (*die.Die, error)
}

// ComponentTypeRepository defines the persistence contract for component types and their BOM.
type ComponentTypeRepository interface {
	Add(ctx context.Context, aggregate *componenttype.ComponentType) error

	// Update persists the component type and replaces its BOM steps.
	Update(ctx context.Context, aggregate *componenttype.ComponentType) error

	Get(ctx context.Context, id kernel.UUID) (*componenttype.ComponentType, error)

	// GetMany loads the requested component types keyed by id.
	// Missing ids are simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*componenttype.ComponentType, error)
}

// DieTypeRepository defines the persistence contract for die types and their component type
// lists.
type DieTypeRepository interface {
	// Add persists a new die type.
	// Returns errs.DuplicateIdentifierError when the code is taken.
	Add(ctx context.Context, aggregate *dietype.DieType) error

	// Update persists the die type and replaces its component type list.
	Update(ctx context.Context, aggregate *dietype.DieType) error

	Get(ctx context.Context, id kernel.UUID) (*dietype.DieType, error)
}
