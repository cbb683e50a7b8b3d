package commands

import (
	"errors"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/guard"
)

var ErrRecordStockMovementCommandIsNotConstructed = errors.New(
	"RecordStockMovementCommand must be created via NewRecordStockMovementCommand constructor",
)

// RecordStockMovementCommand draws material from a lot for a work order.
//
// Example:
//
//	cmd, err := NewRecordStockMovementCommand(kernel.NewUUID(), lotID, workOrderID, 12.5, "first cut")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, inventory.ErrInsufficientStock) {
//	    // the lot has less than 12.5 kg left, nothing was written
//	}
type RecordStockMovementCommand struct { //nolint:recvcheck //using for validation
	movementID  kernel.UUID
	lotID       kernel.UUID
	workOrderID kernel.UUID
	quantityKg  float64
	notes       string

	guard guard.ConstructorGuard
}

func NewRecordStockMovementCommand(
	movementID, lotID, workOrderID kernel.UUID,
	quantityKg float64,
	notes string,
) (RecordStockMovementCommand, error) {
	cmd := RecordStockMovementCommand{
		movementID:  movementID,
		lotID:       lotID,
		workOrderID: workOrderID,
		notes:       strings.TrimSpace(notes),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		movementID.Validate(),
		lotID.Validate(),
		workOrderID.Validate(),
		cmd.setQuantity(quantityKg),
	); err != nil {
		return RecordStockMovementCommand{}, err
	}
	return cmd, nil
}

func (c RecordStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockMovementCommandIsNotConstructed)
}

func (c RecordStockMovementCommand) MovementID() kernel.UUID  { return c.movementID }
func (c RecordStockMovementCommand) LotID() kernel.UUID       { return c.lotID }
func (c RecordStockMovementCommand) WorkOrderID() kernel.UUID { return c.workOrderID }
func (c RecordStockMovementCommand) QuantityKg() float64      { return c.quantityKg }
func (c RecordStockMovementCommand) Notes() string            { return c.notes }

func (c *RecordStockMovementCommand) setQuantity(quantityKg float64) error {
	if quantityKg <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity kg", quantityKg, "> 0", "unbounded")
	}
	c.quantityKg = quantityKg
	return nil
}
