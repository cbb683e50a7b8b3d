package commands

import (
	"context"

	"dietrack/internal/core/domain/model/inventory"
)

type CreateStockItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewCreateStockItemCommandHandler(uowFactory InventoryUoWFactory) CreateStockItemCommandHandler {
	return CreateStockItemCommandHandler{uowFactory: uowFactory}
}

// Handle catalogues the stock item. A bar already catalogued surfaces as
// errs.ErrDuplicateIdentifier.
func (h CreateStockItemCommandHandler) Handle(ctx context.Context, cmd CreateStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := inventory.NewStockItem(cmd.StockItemID(), cmd.Alloy(), cmd.DiameterMm(), cmd.Description())
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

	if err = uow.StockItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
