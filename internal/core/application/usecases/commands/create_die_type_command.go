package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrCreateDieTypeCommandIsNotConstructed = errors.New(
	"CreateDieTypeCommand must be created via NewCreateDieTypeCommand constructor",
)

// CreateDieTypeCommand registers a die type, optionally listing its component types.
type CreateDieTypeCommand struct { //nolint:recvcheck //using for validation
	dieTypeID        kernel.UUID
	code             string
	name             string
	description      string
	componentTypeIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDieTypeCommand(
	dieTypeID kernel.UUID,
	code, name, description string,
	componentTypeIDs []kernel.UUID,
) (CreateDieTypeCommand, error) {
	validations := []error{dieTypeID.Validate()}
	for _, id := range componentTypeIDs {
		validations = append(validations, id.Validate())
	}
	if err := errors.Join(validations...); err != nil {
		return CreateDieTypeCommand{}, err
	}

	return CreateDieTypeCommand{
		dieTypeID:        dieTypeID,
		code:             code,
		name:             name,
		description:      description,
		componentTypeIDs: componentTypeIDs,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDieTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDieTypeCommandIsNotConstructed)
}

func (c CreateDieTypeCommand) DieTypeID() kernel.UUID          { return c.dieTypeID }
func (c CreateDieTypeCommand) Code() string                    { return c.code }
func (c CreateDieTypeCommand) Name() string                    { return c.name }
func (c CreateDieTypeCommand) Description() string             { return c.description }
func (c CreateDieTypeCommand) ComponentTypeIDs() []kernel.UUID { return c.componentTypeIDs }
