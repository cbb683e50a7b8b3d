package commands

import (
	"context"
)

// AddDieComponentCommandHandler appends a component after checking that its component
// type and stock item exist and that the die type allows the component type.
type AddDieComponentCommandHandler struct {
	uowFactory DieUoWFactory
}

func NewAddDieComponentCommandHandler(uowFactory DieUoWFactory) AddDieComponentCommandHandler {
	return AddDieComponentCommandHandler{uowFactory: uowFactory}
}

func (h AddDieComponentCommandHandler) Handle(ctx context.Context, cmd AddDieComponentCommand) error {
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

	dieRepo := uow.DieRepository()

	d, err := dieRepo.Get(ctx, cmd.DieID())
	if err != nil {
		return err
	}
	if _, err = uow.ComponentTypeRepository().Get(ctx, cmd.ComponentTypeID()); err != nil {
		return err
	}
	if _, err = uow.StockItemRepository().Get(ctx, cmd.StockItemID()); err != nil {
		return err
	}

	dt, err := uow.DieTypeRepository().Get(ctx, d.DieTypeID())
	if err != nil {
		return err
	}
	if err = dt.CheckComponentType(cmd.ComponentTypeID()); err != nil {
		return err
	}

	if _, err = d.AddComponent(
		cmd.ComponentID(),
		cmd.ComponentTypeID(),
		cmd.StockItemID(),
		cmd.PackageLengthMm(),
		cmd.TheoreticalConsumptionKg(),
	); err != nil {
		return err
	}

	if err = dieRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
