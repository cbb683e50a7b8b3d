package commands

import (
	"errors"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/guard"
)

var ErrTransitionOperationCommandIsNotConstructed = errors.New(
	"TransitionOperationCommand must be created via NewTransitionOperationCommand constructor",
)

// TransitionOperationCommand moves an operation through its state machine. operatorName is
// optional and only recorded when the operation starts or resumes.
//
// Example:
//
//	cmd, err := NewTransitionOperationCommand(opID, workorder.OperationInProgress, "Ana")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, workorder.ErrSequenceDependencyViolation) {
//	    // an earlier step is not finished yet
//	}
type TransitionOperationCommand struct { //nolint:recvcheck //using for validation
	operationID  kernel.UUID
	target       workorder.OperationStatus
	operatorName string

	guard guard.ConstructorGuard
}

func NewTransitionOperationCommand(
	operationID kernel.UUID,
	target workorder.OperationStatus,
	operatorName string,
) (TransitionOperationCommand, error) {
	if err := errors.Join(operationID.Validate(), target.Validate()); err != nil {
		return TransitionOperationCommand{}, err
	}
	return TransitionOperationCommand{
		operationID:  operationID,
		target:       target,
		operatorName: strings.TrimSpace(operatorName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOperationCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOperationCommandIsNotConstructed)
}

func (c TransitionOperationCommand) OperationID() kernel.UUID          { return c.operationID }
func (c TransitionOperationCommand) Target() workorder.OperationStatus { return c.target }
func (c TransitionOperationCommand) OperatorName() string              { return c.operatorName }
