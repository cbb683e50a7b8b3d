package commands

import (
	"context"

	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"
)

// ReleaseIdleWorkCentersCommandHandler releases every Busy work center without an
// InProgress or Paused operation.
type ReleaseIdleWorkCentersCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewReleaseIdleWorkCentersCommandHandler(uowFactory WorkCenterUoWFactory) ReleaseIdleWorkCentersCommandHandler {
	return ReleaseIdleWorkCentersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of released work centers.
func (h ReleaseIdleWorkCentersCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseIdleWorkCentersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wcRepo := uow.WorkCenterRepository()
	woRepo := uow.WorkOrderRepository()

	busy, err := wcRepo.GetAllBusy(ctx)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, candidate := range busy {
		// The row lock comes first: a transition that occupies the work center holds the
		// same lock until it commits, so the operation check below sees its result.
		wc, err := wcRepo.GetForUpdate(ctx, candidate.ID())
		if err != nil {
			return 0, err
		}
		if wc.Status() != workcenter.Busy {
			continue
		}

		held, err := woRepo.HasOperationsAtWorkCenter(
			ctx,
			wc.ID(),
			workorder.OperationInProgress,
			workorder.OperationPaused,
		)
		if err != nil {
			return 0, err
		}
		if held {
			continue
		}

		wc.Release()
		if err = wcRepo.Update(ctx, wc); err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return released, nil
}
