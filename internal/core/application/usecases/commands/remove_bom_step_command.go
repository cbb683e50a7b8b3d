package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/guard"
)

var ErrRemoveBOMStepCommandIsNotConstructed = errors.New(
	"RemoveBOMStepCommand must be created via NewRemoveBOMStepCommand constructor",
)

type RemoveBOMStepCommand struct { //nolint:recvcheck //using for validation
	componentTypeID kernel.UUID
	sequenceNumber  int

	guard guard.ConstructorGuard
}

func NewRemoveBOMStepCommand(componentTypeID kernel.UUID, sequenceNumber int) (RemoveBOMStepCommand, error) {
	if err := componentTypeID.Validate(); err != nil {
		return RemoveBOMStepCommand{}, err
	}
	if sequenceNumber < 1 {
		return RemoveBOMStepCommand{}, errs.NewValueIsOutOfRangeError("sequence number", sequenceNumber, 1, "unbounded")
	}
	return RemoveBOMStepCommand{
		componentTypeID: componentTypeID,
		sequenceNumber:  sequenceNumber,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveBOMStepCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBOMStepCommandIsNotConstructed)
}

func (c RemoveBOMStepCommand) ComponentTypeID() kernel.UUID { return c.componentTypeID }
func (c RemoveBOMStepCommand) SequenceNumber() int          { return c.sequenceNumber }
