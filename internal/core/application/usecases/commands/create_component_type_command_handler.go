package commands

import (
	"context"

	"dietrack/internal/core/domain/model/componenttype"
)

type CreateComponentTypeCommandHandler struct {
	uowFactory ComponentTypeUoWFactory
}

func NewCreateComponentTypeCommandHandler(uowFactory ComponentTypeUoWFactory) CreateComponentTypeCommandHandler {
	return CreateComponentTypeCommandHandler{uowFactory: uowFactory}
}

func (h CreateComponentTypeCommandHandler) Handle(ctx context.Context, cmd CreateComponentTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ct, err := componenttype.NewComponentType(cmd.ComponentTypeID(), cmd.Code(), cmd.Name())
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

	if err = uow.ComponentTypeRepository().Add(ctx, ct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
