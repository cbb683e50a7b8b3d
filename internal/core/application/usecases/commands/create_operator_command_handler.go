package commands

import (
	"context"

	"dietrack/internal/core/domain/model/operator"
)

// CreateOperatorCommandHandler registers an operator after checking that every assigned
// work center exists. A badge already issued surfaces as errs.ErrDuplicateIdentifier.
type CreateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

func NewCreateOperatorCommandHandler(uowFactory OperatorUoWFactory) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{uowFactory: uowFactory}
}

func (h CreateOperatorCommandHandler) Handle(ctx context.Context, cmd CreateOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := operator.NewOperator(cmd.OperatorID(), cmd.RFIDCode(), cmd.Name(), cmd.EmployeeNumber(), cmd.WorkCenterIDs())
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

	if err = checkWorkCentersExist(ctx, uow, o); err != nil {
		return err
	}
	if err = uow.OperatorRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func checkWorkCentersExist(ctx context.Context, uow WorkCenterRepoFactory, o *operator.Operator) error {
	repo := uow.WorkCenterRepository()
	for _, wcID := range o.WorkCenterIDs() {
		if _, err := repo.Get(ctx, wcID); err != nil {
			return err
		}
	}
	return nil
}
