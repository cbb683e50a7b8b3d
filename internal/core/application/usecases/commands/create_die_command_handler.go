package commands

import (
	"context"

	"dietrack/internal/core/domain/model/die"
)

// CreateDieCommandHandler persists a new die without components under an active die type.
type CreateDieCommandHandler struct {
	uowFactory DieUoWFactory
}

func NewCreateDieCommandHandler(uowFactory DieUoWFactory) CreateDieCommandHandler {
	return CreateDieCommandHandler{uowFactory: uowFactory}
}

// Handle creates the die. A taken die number surfaces as errs.ErrDuplicateIdentifier and a
// retired die type as dietype.ErrDieTypeInactive.
func (h CreateDieCommandHandler) Handle(ctx context.Context, cmd CreateDieCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := die.NewDie(cmd.DieID(), cmd.DieTypeID(), cmd.DieNumber(), cmd.DiameterMm(), cmd.PackageLengthMm())
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

	dt, err := uow.DieTypeRepository().Get(ctx, cmd.DieTypeID())
	if err != nil {
		return err
	}
	if err = dt.CheckAcceptsDies(); err != nil {
		return err
	}

	if err = uow.DieRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
