package commands

import (
	"context"
)

type ChangeDieStatusCommandHandler struct {
	uowFactory DieUoWFactory
}

func NewChangeDieStatusCommandHandler(uowFactory DieUoWFactory) ChangeDieStatusCommandHandler {
	return ChangeDieStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the status change. Invalid transitions fail with errs.ErrValueIsInvalid
// and leave the die untouched.
func (h ChangeDieStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDieStatusCommand) error {
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

	dieRepo := uow.DieRepository()
	d, err := dieRepo.Get(ctx, cmd.DieID())
	if err != nil {
		return err
	}
	if err = d.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = dieRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
