package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrCreateComponentTypeCommandIsNotConstructed = errors.New(
	"CreateComponentTypeCommand must be created via NewCreateComponentTypeCommand constructor",
)

// CreateComponentTypeCommand registers a component type with an empty BOM.
type CreateComponentTypeCommand struct { //nolint:recvcheck //using for validation
	componentTypeID kernel.UUID
	code            string
	name            string

	guard guard.ConstructorGuard
}

func NewCreateComponentTypeCommand(componentTypeID kernel.UUID, code, name string) (CreateComponentTypeCommand, error) {
	if err := componentTypeID.Validate(); err != nil {
		return CreateComponentTypeCommand{}, err
	}
	return CreateComponentTypeCommand{
		componentTypeID: componentTypeID,
		code:            code,
		name:            name,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateComponentTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateComponentTypeCommandIsNotConstructed)
}

func (c CreateComponentTypeCommand) ComponentTypeID() kernel.UUID { return c.componentTypeID }
func (c CreateComponentTypeCommand) Code() string                 { return c.code }
func (c CreateComponentTypeCommand) Name() string                 { return c.name }
