package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrCreateOperatorCommandIsNotConstructed = errors.New(
	"CreateOperatorCommand must be created via NewCreateOperatorCommand constructor",
)

// CreateOperatorCommand issues an RFID badge to a new operator.
type CreateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID     kernel.UUID
	rfidCode       string
	name           string
	employeeNumber string
	workCenterIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOperatorCommand(
	operatorID kernel.UUID,
	rfidCode, name, employeeNumber string,
	workCenterIDs []kernel.UUID,
) (CreateOperatorCommand, error) {
	if err := operatorID.Validate(); err != nil {
		return CreateOperatorCommand{}, err
	}
	return CreateOperatorCommand{
		operatorID:     operatorID,
		rfidCode:       rfidCode,
		name:           name,
		employeeNumber: employeeNumber,
		workCenterIDs:  workCenterIDs,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

func (c CreateOperatorCommand) OperatorID() kernel.UUID      { return c.operatorID }
func (c CreateOperatorCommand) RFIDCode() string             { return c.rfidCode }
func (c CreateOperatorCommand) Name() string                 { return c.name }
func (c CreateOperatorCommand) EmployeeNumber() string       { return c.employeeNumber }
func (c CreateOperatorCommand) WorkCenterIDs() []kernel.UUID { return c.workCenterIDs }
