package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrDeleteWorkCenterCommandIsNotConstructed = errors.New(
	"DeleteWorkCenterCommand must be created via NewDeleteWorkCenterCommand constructor",
)

type DeleteWorkCenterCommand struct { //nolint:recvcheck //using for validation
	workCenterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkCenterCommand(workCenterID kernel.UUID) (DeleteWorkCenterCommand, error) {
	if err := workCenterID.Validate(); err != nil {
		return DeleteWorkCenterCommand{}, err
	}
	return DeleteWorkCenterCommand{
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkCenterCommandIsNotConstructed)
}

func (c DeleteWorkCenterCommand) WorkCenterID() kernel.UUID { return c.workCenterID }
