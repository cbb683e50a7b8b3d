package inventory

import (
	"errors"
	"strings"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrStockMovementIsNotConstructed = errors.New("StockMovement must be created via Lot.Debit or RestoreStockMovement")

// StockMovement is an immutable record of material drawn from a lot for a work order.
type StockMovement struct {
	id            kernel.UUID
	lotID         kernel.UUID
	workOrderID   kernel.UUID
	quantityKg    float64
	notes         string
	createdAt     time.Time
	isConstructed bool
}

// RestoreStockMovement rebuilds a movement from persistence.
func RestoreStockMovement(
	id, lotID, workOrderID kernel.UUID,
	quantityKg float64,
	notes string,
	createdAt time.Time,
) (*StockMovement, error) {
	if err := errors.Join(id.Validate(), lotID.Validate(), workOrderID.Validate()); err != nil {
		return nil, err
	}
	if quantityKg <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity kg", quantityKg, "> 0", "unbounded")
	}
	return &StockMovement{
		id:            id,
		lotID:         lotID,
		workOrderID:   workOrderID,
		quantityKg:    quantityKg,
		notes:         strings.TrimSpace(notes),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (m *StockMovement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrStockMovementIsNotConstructed
	}
	return nil
}

func (m *StockMovement) ID() kernel.UUID          { return m.id }
func (m *StockMovement) LotID() kernel.UUID       { return m.lotID }
func (m *StockMovement) WorkOrderID() kernel.UUID { return m.workOrderID }
func (m *StockMovement) QuantityKg() float64      { return m.quantityKg }
func (m *StockMovement) Notes() string            { return m.notes }
func (m *StockMovement) CreatedAt() time.Time     { return m.createdAt }
