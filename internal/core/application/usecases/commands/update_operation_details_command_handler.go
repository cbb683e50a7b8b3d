package commands

import (
	"context"

	"dietrack/internal/core/domain/model/workorder"
)

type UpdateOperationDetailsCommandHandler struct {
	uowFactory OperationUoWFactory
}

func NewUpdateOperationDetailsCommandHandler(uowFactory OperationUoWFactory) UpdateOperationDetailsCommandHandler {
	return UpdateOperationDetailsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOperationDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOperationDetailsCommand,
) (*workorder.Operation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	wo, err := repo.GetByOperationForUpdate(ctx, cmd.OperationID())
	if err != nil {
		return nil, err
	}
	if err = wo.UpdateOperationDetails(cmd.OperationID(), cmd.Details()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, wo); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo.Operation(cmd.OperationID())
}
