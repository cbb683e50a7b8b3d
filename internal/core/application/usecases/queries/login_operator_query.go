package queries

import (
	"errors"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/guard"
)

var ErrLoginOperatorQueryIsNotConstructed = errors.New(
	"LoginOperatorQuery must be created via NewLoginOperatorQuery constructor",
)

// LoginOperatorQuery resolves a scanned RFID badge to an active operator and the work
// centers the operator may book work on.
type LoginOperatorQuery struct {
	rfidCode string

	guard guard.ConstructorGuard
}

func NewLoginOperatorQuery(rfidCode string) (LoginOperatorQuery, error) {
	rfidCode = strings.TrimSpace(rfidCode)
	if rfidCode == "" {
		return LoginOperatorQuery{}, errs.NewValueIsRequiredError("rfid code")
	}
	return LoginOperatorQuery{rfidCode: rfidCode, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginOperatorQuery) Validate() error {
	return q.guard.Validate(ErrLoginOperatorQueryIsNotConstructed)
}

func (q LoginOperatorQuery) RFIDCode() string { return q.rfidCode }

// OperatorSession is the logged in operator.
type OperatorSession struct {
	OperatorID     kernel.UUID
	Name           string
	EmployeeNumber string
	WorkCenters    []WorkCenterRef
}

// WorkCenterRef names a work center.
type WorkCenterRef struct {
	ID   kernel.UUID
	Name string
}
