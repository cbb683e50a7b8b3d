package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrChangeDieStatusCommandIsNotConstructed = errors.New(
	"ChangeDieStatusCommand must be created via NewChangeDieStatusCommand constructor",
)

// ChangeDieStatusCommand requests a lifecycle change of a die (submit, ready, complete).
type ChangeDieStatusCommand struct { //nolint:recvcheck //using for validation
	dieID  kernel.UUID
	status die.Status

	guard guard.ConstructorGuard
}

func NewChangeDieStatusCommand(dieID kernel.UUID, status die.Status) (ChangeDieStatusCommand, error) {
	if err := errors.Join(dieID.Validate(), status.Validate()); err != nil {
		return ChangeDieStatusCommand{}, err
	}
	return ChangeDieStatusCommand{
		dieID:  dieID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDieStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDieStatusCommandIsNotConstructed)
}

func (c ChangeDieStatusCommand) DieID() kernel.UUID { return c.dieID }
func (c ChangeDieStatusCommand) Status() die.Status { return c.status }
