package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrAddBOMStepCommandIsNotConstructed = errors.New(
	"AddBOMStepCommand must be created via NewAddBOMStepCommand constructor",
)

// AddBOMStepCommand adds a routing step to a component type. The step is validated
// here so that a malformed request never opens a transaction.
//
// Example:
//
//	wc := latheID
//	cmd, err := NewAddBOMStepCommand(typeID, 10, "Turning", &wc, 45, "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddBOMStepCommand struct { //nolint:recvcheck //using for validation
	componentTypeID kernel.UUID
	step            componenttype.Step

	guard guard.ConstructorGuard
}

func NewAddBOMStepCommand(
	componentTypeID kernel.UUID,
	sequenceNumber int,
	operationName string,
	workCenterID *kernel.UUID,
	estimatedDurationMinutes int,
	notes string,
) (AddBOMStepCommand, error) {
	if err := componentTypeID.Validate(); err != nil {
		return AddBOMStepCommand{}, err
	}

	step, err := componenttype.NewStep(sequenceNumber, operationName, workCenterID, estimatedDurationMinutes, notes)
	if err != nil {
		return AddBOMStepCommand{}, err
	}

	return AddBOMStepCommand{
		componentTypeID: componentTypeID,
		step:            step,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c AddBOMStepCommand) Validate() error {
	return c.guard.Validate(ErrAddBOMStepCommandIsNotConstructed)
}

func (c AddBOMStepCommand) ComponentTypeID() kernel.UUID { return c.componentTypeID }
func (c AddBOMStepCommand) Step() componenttype.Step     { return c.step }
