package commands

import (
	"context"
	"time"
)

type ChangeProductionOrderStatusCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
}

func NewChangeProductionOrderStatusCommandHandler(
	uowFactory ProductionOrderUoWFactory,
) ChangeProductionOrderStatusCommandHandler {
	return ChangeProductionOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeProductionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProductionOrderStatusCommand,
) error {
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

	repo := uow.ProductionOrderRepository()
	po, err := repo.GetForUpdate(ctx, cmd.ProductionOrderID())
	if err != nil {
		return err
	}
	if err = po.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
