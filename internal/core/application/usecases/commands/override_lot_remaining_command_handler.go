package commands

import (
	"context"
)

type OverrideLotRemainingCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewOverrideLotRemainingCommandHandler(uowFactory InventoryUoWFactory) OverrideLotRemainingCommandHandler {
	return OverrideLotRemainingCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrValueIsOutOfRange when the value is negative or above the gross
// weight of the lot.
func (h OverrideLotRemainingCommandHandler) Handle(ctx context.Context, cmd OverrideLotRemainingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LotRepository()
	lot, err := repo.GetForUpdate(ctx, cmd.LotID())
	if err != nil {
		return err
	}
	if err = lot.OverrideRemaining(cmd.RemainingKg()); err != nil {
		return err
	}
	if err = repo.Update(ctx, lot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
