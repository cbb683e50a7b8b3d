package commands

import (
	"context"
)

// ChangeWorkCenterStatusCommandHandler applies an operator requested status. The row is
// locked so that the change cannot interleave with an operation occupying the work center.
type ChangeWorkCenterStatusCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewChangeWorkCenterStatusCommandHandler(uowFactory WorkCenterUoWFactory) ChangeWorkCenterStatusCommandHandler {
	return ChangeWorkCenterStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeWorkCenterStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkCenterStatusCommand) error {
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

	repo := uow.WorkCenterRepository()
	wc, err := repo.GetForUpdate(ctx, cmd.WorkCenterID())
	if err != nil {
		return err
	}
	if err = wc.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = repo.Update(ctx, wc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
