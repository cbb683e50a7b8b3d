package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrLotIsNotConstructed = errors.New("Lot must be created via NewLot constructor")

// Lot is a traceable delivery of one steel stock item.
//
// Invariants:
//   - 0 <= remaining_kg <= gross_weight_kg
//   - weights carry at most three decimals
//   - remaining_kg only decreases through Debit; OverrideRemaining is the administrative path
type Lot struct {
	kernel.EventRecorder

	id                kernel.UUID
	stockItemID       kernel.UUID
	certificateNumber string
	supplier          string
	lengthMm          float64
	grossWeightKg     float64
	remainingKg       float64
	receivedDate      time.Time
	isConstructed     bool
}

// NewLot receives a full lot: remaining equals gross weight.
func NewLot(
	id, stockItemID kernel.UUID,
	certificateNumber, supplier string,
	lengthMm, grossWeightKg float64,
	receivedDate time.Time,
) (*Lot, error) {
	l := &Lot{
		supplier:      strings.TrimSpace(supplier),
		receivedDate:  receivedDate.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setStockItemID(stockItemID),
		l.setCertificateNumber(certificateNumber),
		l.setDimensions(lengthMm, grossWeightKg),
	); err != nil {
		return nil, err
	}
	l.remainingKg = l.grossWeightKg
	return l, nil
}

// RestoreLot rebuilds a lot from persistence.
func RestoreLot(
	id, stockItemID kernel.UUID,
	certificateNumber, supplier string,
	lengthMm, grossWeightKg, remainingKg float64,
	receivedDate time.Time,
) (*Lot, error) {
	l, err := NewLot(id, stockItemID, certificateNumber, supplier, lengthMm, grossWeightKg, receivedDate)
	if err != nil {
		return nil, err
	}
	if err = l.OverrideRemaining(remainingKg); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lot) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLotIsNotConstructed
	}
	return nil
}

func (l *Lot) ID() kernel.UUID           { return l.id }
func (l *Lot) StockItemID() kernel.UUID  { return l.stockItemID }
func (l *Lot) CertificateNumber() string { return l.certificateNumber }
func (l *Lot) Supplier() string          { return l.supplier }
func (l *Lot) LengthMm() float64         { return l.lengthMm }
func (l *Lot) GrossWeightKg() float64    { return l.grossWeightKg }
func (l *Lot) RemainingKg() float64      { return l.remainingKg }
func (l *Lot) ReceivedDate() time.Time   { return l.receivedDate }

// Debit draws quantityKg for a work order and returns the movement to persist.
// A debit larger than the remaining quantity fails with InsufficientStockError and
// leaves the lot unchanged.
func (l *Lot) Debit(
	movementID, workOrderID kernel.UUID,
	quantityKg float64,
	notes string,
	now time.Time,
) (*StockMovement, error) {
	if quantityKg <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity kg", quantityKg, "> 0", "unbounded")
	}
	if err := kernel.ValidateKg("quantity kg", quantityKg); err != nil {
		return nil, err
	}
	if quantityKg > l.remainingKg {
		return nil, &InsufficientStockError{
			CertificateNumber: l.certificateNumber,
			RequestedKg:       quantityKg,
			RemainingKg:       l.remainingKg,
		}
	}

	movement, err := RestoreStockMovement(movementID, l.id, workOrderID, quantityKg, notes, now)
	if err != nil {
		return nil, err
	}
	l.remainingKg = kernel.RoundQuantity(l.remainingKg - quantityKg)

	l.RecordEvent(StockMovementRecordedEvent{
		BaseEvent:   kernel.NewBaseEvent(EventTypeStockMovementRecorded, l.id, now),
		MovementID:  movement.ID(),
		WorkOrderID: workOrderID,
		QuantityKg:  quantityKg,
		RemainingKg: l.remainingKg,
	})
	return movement, nil
}

// OverrideRemaining sets the remaining quantity directly, e.g. after a physical stock count.
func (l *Lot) OverrideRemaining(remainingKg float64) error {
	if remainingKg < 0 || remainingKg > l.grossWeightKg {
		return errs.NewValueIsOutOfRangeError("remaining kg", remainingKg, 0, l.grossWeightKg)
	}
	if err := kernel.ValidateKg("remaining kg", remainingKg); err != nil {
		return err
	}
	l.remainingKg = remainingKg
	return nil
}

func (l *Lot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lot) setStockItemID(stockItemID kernel.UUID) error {
	if err := stockItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("stock item", err)
	}
	l.stockItemID = stockItemID
	return nil
}

func (l *Lot) setCertificateNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("certificate number")
	}
	if len(number) > 100 {
		return errs.NewValueIsInvalidErrorWithCause("certificate number", fmt.Errorf("longer than 100 characters"))
	}
	l.certificateNumber = number
	return nil
}

func (l *Lot) setDimensions(lengthMm, grossWeightKg float64) error {
	if lengthMm < 0 {
		return errs.NewValueIsOutOfRangeError("length mm", lengthMm, 0, "unbounded")
	}
	if grossWeightKg <= 0 {
		return errs.NewValueIsOutOfRangeError("gross weight kg", grossWeightKg, "> 0", "unbounded")
	}
	if err := errors.Join(
		kernel.ValidateMm("length mm", lengthMm),
		kernel.ValidateKg("gross weight kg", grossWeightKg),
	); err != nil {
		return err
	}
	l.lengthMm = lengthMm
	l.grossWeightKg = grossWeightKg
	return nil
}
