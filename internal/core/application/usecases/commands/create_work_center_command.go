package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/pkg/guard"
)

var ErrCreateWorkCenterCommandIsNotConstructed = errors.New(
	"CreateWorkCenterCommand must be created via NewCreateWorkCenterCommand constructor",
)

// CreateWorkCenterCommand registers a machine or station. New work centers are Available.
type CreateWorkCenterCommand struct { //nolint:recvcheck //using for validation
	workCenterID kernel.UUID
	name         string
	attributes   workcenter.Attributes

	guard guard.ConstructorGuard
}

func NewCreateWorkCenterCommand(
	workCenterID kernel.UUID,
	name string,
	attributes workcenter.Attributes,
) (CreateWorkCenterCommand, error) {
	if err := workCenterID.Validate(); err != nil {
		return CreateWorkCenterCommand{}, err
	}
	return CreateWorkCenterCommand{
		workCenterID: workCenterID,
		name:         name,
		attributes:   attributes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkCenterCommandIsNotConstructed)
}

func (c CreateWorkCenterCommand) WorkCenterID() kernel.UUID         { return c.workCenterID }
func (c CreateWorkCenterCommand) Name() string                      { return c.name }
func (c CreateWorkCenterCommand) Attributes() workcenter.Attributes { return c.attributes }
