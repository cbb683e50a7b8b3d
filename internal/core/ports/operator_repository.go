package ports

import (
	"context"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for operators and their work center
// assignments.
type OperatorRepository interface {
	// Add persists a new operator.
	// Returns errs.DuplicateIdentifierError when the RFID code is already issued.
	Add(ctx context.Context, aggregate *operator.Operator) error

	// Update persists the operator and replaces its work center assignments.
	Update(ctx context.Context, aggregate *operator.Operator) error

	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)

	// GetByRFID retrieves the operator a badge was issued to.
	GetByRFID(ctx context.Context, rfidCode string) (*operator.Operator, error)
}
