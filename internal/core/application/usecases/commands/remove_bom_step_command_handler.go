package commands

import (
	"context"
)

type RemoveBOMStepCommandHandler struct {
	uowFactory ComponentTypeUoWFactory
}

func NewRemoveBOMStepCommandHandler(uowFactory ComponentTypeUoWFactory) RemoveBOMStepCommandHandler {
	return RemoveBOMStepCommandHandler{uowFactory: uowFactory}
}

func (h RemoveBOMStepCommandHandler) Handle(ctx context.Context, cmd RemoveBOMStepCommand) error {
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

	repo := uow.ComponentTypeRepository()
	ct, err := repo.Get(ctx, cmd.ComponentTypeID())
	if err != nil {
		return err
	}
	if err = ct.RemoveStep(cmd.SequenceNumber()); err != nil {
		return err
	}
	if err = repo.Update(ctx, ct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
