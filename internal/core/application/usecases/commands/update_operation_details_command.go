package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/guard"
)

var ErrUpdateOperationDetailsCommandIsNotConstructed = errors.New(
	"UpdateOperationDetailsCommand must be created via NewUpdateOperationDetailsCommand constructor",
)

// UpdateOperationDetailsCommand edits the descriptive fields of an operation. Nil fields
// are left as they are.
type UpdateOperationDetailsCommand struct { //nolint:recvcheck //using for validation
	operationID kernel.UUID
	details     workorder.OperationDetails

	guard guard.ConstructorGuard
}

func NewUpdateOperationDetailsCommand(
	operationID kernel.UUID,
	details workorder.OperationDetails,
) (UpdateOperationDetailsCommand, error) {
	if err := operationID.Validate(); err != nil {
		return UpdateOperationDetailsCommand{}, err
	}
	return UpdateOperationDetailsCommand{
		operationID: operationID,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOperationDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperationDetailsCommandIsNotConstructed)
}

func (c UpdateOperationDetailsCommand) OperationID() kernel.UUID            { return c.operationID }
func (c UpdateOperationDetailsCommand) Details() workorder.OperationDetails { return c.details }
