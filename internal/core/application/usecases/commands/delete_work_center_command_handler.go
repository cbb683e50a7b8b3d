package commands

import (
	"context"
	"fmt"

	"dietrack/internal/core/domain/model/workcenter"
)

// DeleteWorkCenterCommandHandler removes a work center that no operation references.
// Operations keep the work center of their BOM snapshot forever, so a work center that
// ever appeared in an expanded work order cannot be deleted.
type DeleteWorkCenterCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewDeleteWorkCenterCommandHandler(uowFactory WorkCenterUoWFactory) DeleteWorkCenterCommandHandler {
	return DeleteWorkCenterCommandHandler{uowFactory: uowFactory}
}

// Handle fails with workcenter.ErrWorkCenterInUse when operations reference the work
// center and with errs.ErrObjectNotFound when it does not exist.
func (h DeleteWorkCenterCommandHandler) Handle(ctx context.Context, cmd DeleteWorkCenterCommand) error {
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

	referenced, err := uow.WorkOrderRepository().HasOperationsAtWorkCenter(ctx, wc.ID())
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: %s", workcenter.ErrWorkCenterInUse, wc.Name())
	}

	if err = repo.Delete(ctx, wc.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
