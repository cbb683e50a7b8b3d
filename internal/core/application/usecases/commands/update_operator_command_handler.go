package commands

import (
	"context"

	"dietrack/internal/core/domain/model/operator"
)

type UpdateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

func NewUpdateOperatorCommandHandler(uowFactory OperatorUoWFactory) UpdateOperatorCommandHandler {
	return UpdateOperatorCommandHandler{uowFactory: uowFactory}
}

// Handle applies the changes and returns the updated operator.
func (h UpdateOperatorCommandHandler) Handle(ctx context.Context, cmd UpdateOperatorCommand) (*operator.Operator, error) {
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

	repo := uow.OperatorRepository()
	o, err := repo.Get(ctx, cmd.OperatorID())
	if err != nil {
		return nil, err
	}
	if err = o.Apply(cmd.Changes()); err != nil {
		return nil, err
	}
	if cmd.Changes().WorkCenterIDs != nil {
		if err = checkWorkCentersExist(ctx, uow, o); err != nil {
			return nil, err
		}
	}
	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
