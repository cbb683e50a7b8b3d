package commands

import (
	"context"

	"dietrack/internal/core/domain/model/dietype"
)

// CreateDieTypeCommandHandler persists a die type after checking that every listed
// component type exists.
type CreateDieTypeCommandHandler struct {
	uowFactory DieTypeUoWFactory
}

func NewCreateDieTypeCommandHandler(uowFactory DieTypeUoWFactory) CreateDieTypeCommandHandler {
	return CreateDieTypeCommandHandler{uowFactory: uowFactory}
}

func (h CreateDieTypeCommandHandler) Handle(ctx context.Context, cmd CreateDieTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dt, err := dietype.NewDieType(cmd.DieTypeID(), cmd.Code(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}
	for _, componentTypeID := range cmd.ComponentTypeIDs() {
		if err = dt.AddComponentType(componentTypeID); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ctRepo := uow.ComponentTypeRepository()
	for _, componentTypeID := range dt.ComponentTypeIDs() {
		if _, err = ctRepo.Get(ctx, componentTypeID); err != nil {
			return err
		}
	}

	if err = uow.DieTypeRepository().Add(ctx, dt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
