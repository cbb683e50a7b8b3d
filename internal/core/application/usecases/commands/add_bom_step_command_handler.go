package commands

import (
	"context"
)

// AddBOMStepCommandHandler adds a step to the BOM of a component type. A preferred work
// center, when given, must exist. Work orders expanded earlier keep their own snapshot.
type AddBOMStepCommandHandler struct {
	uowFactory ComponentTypeUoWFactory
}

func NewAddBOMStepCommandHandler(uowFactory ComponentTypeUoWFactory) AddBOMStepCommandHandler {
	return AddBOMStepCommandHandler{uowFactory: uowFactory}
}

func (h AddBOMStepCommandHandler) Handle(ctx context.Context, cmd AddBOMStepCommand) error {
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

	step := cmd.Step()
	if wcID := step.WorkCenterID(); wcID != nil {
		if _, err = uow.WorkCenterRepository().Get(ctx, *wcID); err != nil {
			return err
		}
	}

	if err = ct.AddStep(step); err != nil {
		return err
	}
	if err = repo.Update(ctx, ct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
