package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrChangeDieTypeComponentCommandIsNotConstructed = errors.New(
	"ChangeDieTypeComponentCommand must be created via NewAddDieTypeComponentCommand or NewRemoveDieTypeComponentCommand",
)

// ChangeDieTypeComponentCommand lists or unlists a component type on a die type.
type ChangeDieTypeComponentCommand struct { //nolint:recvcheck //using for validation
	dieTypeID       kernel.UUID
	componentTypeID kernel.UUID
	remove          bool

	guard guard.ConstructorGuard
}

func NewAddDieTypeComponentCommand(dieTypeID, componentTypeID kernel.UUID) (ChangeDieTypeComponentCommand, error) {
	return newChangeDieTypeComponentCommand(dieTypeID, componentTypeID, false)
}

func NewRemoveDieTypeComponentCommand(dieTypeID, componentTypeID kernel.UUID) (ChangeDieTypeComponentCommand, error) {
	return newChangeDieTypeComponentCommand(dieTypeID, componentTypeID, true)
}

func newChangeDieTypeComponentCommand(
	dieTypeID, componentTypeID kernel.UUID,
	remove bool,
) (ChangeDieTypeComponentCommand, error) {
	if err := errors.Join(dieTypeID.Validate(), componentTypeID.Validate()); err != nil {
		return ChangeDieTypeComponentCommand{}, err
	}
	return ChangeDieTypeComponentCommand{
		dieTypeID:       dieTypeID,
		componentTypeID: componentTypeID,
		remove:          remove,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDieTypeComponentCommand) Validate() error {
	return c.guard.Validate(ErrChangeDieTypeComponentCommandIsNotConstructed)
}

func (c ChangeDieTypeComponentCommand) DieTypeID() kernel.UUID       { return c.dieTypeID }
func (c ChangeDieTypeComponentCommand) ComponentTypeID() kernel.UUID { return c.componentTypeID }
func (c ChangeDieTypeComponentCommand) Remove() bool                 { return c.remove }
