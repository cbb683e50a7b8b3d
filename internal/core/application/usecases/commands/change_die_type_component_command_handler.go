package commands

import (
	"context"
)

// ChangeDieTypeComponentCommandHandler edits the component type list of a die type. Dies
// already built keep their components either way.
type ChangeDieTypeComponentCommandHandler struct {
	uowFactory DieTypeUoWFactory
}

func NewChangeDieTypeComponentCommandHandler(uowFactory DieTypeUoWFactory) ChangeDieTypeComponentCommandHandler {
	return ChangeDieTypeComponentCommandHandler{uowFactory: uowFactory}
}

func (h ChangeDieTypeComponentCommandHandler) Handle(ctx context.Context, cmd ChangeDieTypeComponentCommand) error {
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

	repo := uow.DieTypeRepository()
	dt, err := repo.Get(ctx, cmd.DieTypeID())
	if err != nil {
		return err
	}

	if cmd.Remove() {
		err = dt.RemoveComponentType(cmd.ComponentTypeID())
	} else {
		if _, err = uow.ComponentTypeRepository().Get(ctx, cmd.ComponentTypeID()); err != nil {
			return err
		}
		err = dt.AddComponentType(cmd.ComponentTypeID())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, dt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
