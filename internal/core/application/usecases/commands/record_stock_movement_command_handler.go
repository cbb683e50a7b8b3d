package commands

import (
	"context"
	"time"

	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"
)

// RecordStockMovementCommandHandler is the inventory ledger write path.
//
// The lot row is locked before the remaining quantity is checked, so concurrent debits of
// one lot are serialised and remaining_kg never goes negative. The movement, the debit and
// the work order's actual consumption are written in the same transaction.
type RecordStockMovementCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewRecordStockMovementCommandHandler(uowFactory InventoryUoWFactory) RecordStockMovementCommandHandler {
	return RecordStockMovementCommandHandler{uowFactory: uowFactory}
}

// Handle returns the recorded movement, or *inventory.InsufficientStockError when the lot
// holds less than the requested quantity.
func (h RecordStockMovementCommandHandler) Handle(
	ctx context.Context,
	cmd RecordStockMovementCommand,
) (*inventory.StockMovement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "RecordStockMovementCommandHandler.Handle")
	defer span.End()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lotRepo := uow.LotRepository()
	woRepo := uow.WorkOrderRepository()

	lot, err := lotRepo.GetForUpdate(ctx, cmd.LotID())
	if err != nil {
		return nil, err
	}
	wo, err := woRepo.GetForUpdate(ctx, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	movement, err := lot.Debit(cmd.MovementID(), wo.ID(), cmd.QuantityKg(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}
	if err = wo.RecordConsumption(cmd.QuantityKg()); err != nil {
		return nil, err
	}
	if err = wo.BindLot(lot.ID()); err != nil {
		return nil, err
	}

	if err = lotRepo.AddMovement(ctx, movement); err != nil {
		return nil, err
	}
	if err = lotRepo.Update(ctx, lot); err != nil {
		return nil, err
	}
	if err = woRepo.Update(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.StockMovementsTotal.Inc()
	metrics.StockDebitedKgTotal.Add(movement.QuantityKg())
	return movement, nil
}
