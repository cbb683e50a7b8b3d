package commands

import (
	"context"

	"dietrack/internal/core/domain/model/inventory"
)

type ReceiveLotCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewReceiveLotCommandHandler(uowFactory InventoryUoWFactory) ReceiveLotCommandHandler {
	return ReceiveLotCommandHandler{uowFactory: uowFactory}
}

func (h ReceiveLotCommandHandler) Handle(ctx context.Context, cmd ReceiveLotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lot, err := inventory.NewLot(
		cmd.LotID(),
		cmd.StockItemID(),
		cmd.CertificateNumber(),
		cmd.Supplier(),
		cmd.LengthMm(),
		cmd.GrossWeightKg(),
		cmd.ReceivedDate(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.StockItemRepository().Get(ctx, cmd.StockItemID()); err != nil {
		return err
	}
	if err = uow.LotRepository().Add(ctx, lot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
