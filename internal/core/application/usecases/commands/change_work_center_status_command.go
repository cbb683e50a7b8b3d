package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/pkg/guard"
)

var ErrChangeWorkCenterStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkCenterStatusCommand must be created via NewChangeWorkCenterStatusCommand constructor",
)

// ChangeWorkCenterStatusCommand switches maintenance on (UnderMaintenance) or off (Available).
type ChangeWorkCenterStatusCommand struct { //nolint:recvcheck //using for validation
	workCenterID kernel.UUID
	status       workcenter.Status

	guard guard.ConstructorGuard
}

func NewChangeWorkCenterStatusCommand(
	workCenterID kernel.UUID,
	status workcenter.Status,
) (ChangeWorkCenterStatusCommand, error) {
	if err := errors.Join(workCenterID.Validate(), status.Validate()); err != nil {
		return ChangeWorkCenterStatusCommand{}, err
	}
	return ChangeWorkCenterStatusCommand{
		workCenterID: workCenterID,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeWorkCenterStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkCenterStatusCommandIsNotConstructed)
}

func (c ChangeWorkCenterStatusCommand) WorkCenterID() kernel.UUID { return c.workCenterID }
func (c ChangeWorkCenterStatusCommand) Status() workcenter.Status { return c.status }
