package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/pkg/guard"
)

var ErrUpdateOperatorCommandIsNotConstructed = errors.New(
	"UpdateOperatorCommand must be created via NewUpdateOperatorCommand constructor",
)

// UpdateOperatorCommand edits an operator. Nil fields are left as they are; a non-nil work
// center list replaces the assignments.
type UpdateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	changes    operator.Changes

	guard guard.ConstructorGuard
}

func NewUpdateOperatorCommand(operatorID kernel.UUID, changes operator.Changes) (UpdateOperatorCommand, error) {
	if err := operatorID.Validate(); err != nil {
		return UpdateOperatorCommand{}, err
	}
	return UpdateOperatorCommand{
		operatorID: operatorID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperatorCommandIsNotConstructed)
}

func (c UpdateOperatorCommand) OperatorID() kernel.UUID   { return c.operatorID }
func (c UpdateOperatorCommand) Changes() operator.Changes { return c.changes }
