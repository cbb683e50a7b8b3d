package operator

import (
	"errors"
	"fmt"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var (
	ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

	// ErrOperatorInactive is returned when a deactivated badge is used to log in.
	ErrOperatorInactive = errors.New("operator is inactive")
)

// Operator is a worker who executes operations on work centers.
//
// Invariants:
//   - RFID code is required and unique (enforced by storage)
//   - work center assignments are unique
type Operator struct {
	id             kernel.UUID
	rfidCode       string
	name           string
	employeeNumber string
	isActive       bool
	workCenterIDs  []kernel.UUID
	isConstructed  bool
}

// Changes carries a partial update. Nil fields are left untouched; a non-nil WorkCenterIDs
// replaces the assignments.
type Changes struct {
	RFIDCode       *string
	Name           *string
	EmployeeNumber *string
	IsActive       *bool
	WorkCenterIDs  *[]kernel.UUID
}

// NewOperator creates an active operator assigned to the given work centers.
func NewOperator(
	id kernel.UUID,
	rfidCode, name, employeeNumber string,
	workCenterIDs []kernel.UUID,
) (*Operator, error) {
	o := &Operator{
		employeeNumber: strings.TrimSpace(employeeNumber),
		isActive:       true,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRFIDCode(rfidCode),
		o.setName(name),
		o.setWorkCenters(workCenterIDs),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOperator rebuilds an operator from persistence.
func RestoreOperator(
	id kernel.UUID,
	rfidCode, name, employeeNumber string,
	isActive bool,
	workCenterIDs []kernel.UUID,
) (*Operator, error) {
	o, err := NewOperator(id, rfidCode, name, employeeNumber, workCenterIDs)
	if err != nil {
		return nil, err
	}
	o.isActive = isActive
	return o, nil
}

func (o *Operator) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperatorIsNotConstructed
	}
	return nil
}

func (o *Operator) ID() kernel.UUID        { return o.id }
func (o *Operator) RFIDCode() string       { return o.rfidCode }
func (o *Operator) Name() string           { return o.name }
func (o *Operator) EmployeeNumber() string { return o.employeeNumber }
func (o *Operator) IsActive() bool         { return o.isActive }

func (o *Operator) WorkCenterIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.workCenterIDs))
	copy(out, o.workCenterIDs)
	return out
}

// Apply validates every change before mutating anything.
func (o *Operator) Apply(changes Changes) error {
	next := *o
	next.workCenterIDs = o.WorkCenterIDs()

	var errList []error
	if changes.RFIDCode != nil {
		errList = append(errList, next.setRFIDCode(*changes.RFIDCode))
	}
	if changes.Name != nil {
		errList = append(errList, next.setName(*changes.Name))
	}
	if changes.EmployeeNumber != nil {
		next.employeeNumber = strings.TrimSpace(*changes.EmployeeNumber)
	}
	if changes.IsActive != nil {
		next.isActive = *changes.IsActive
	}
	if changes.WorkCenterIDs != nil {
		errList = append(errList, next.setWorkCenters(*changes.WorkCenterIDs))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*o = next
	return nil
}

// CanLogIn fails for deactivated operators.
func (o *Operator) CanLogIn() error {
	if !o.isActive {
		return fmt.Errorf("%w: %s", ErrOperatorInactive, o.name)
	}
	return nil
}

// AssignedTo reports whether the operator may work on the given work center.
func (o *Operator) AssignedTo(workCenterID kernel.UUID) bool {
	for _, id := range o.workCenterIDs {
		if id.IsEqual(workCenterID) {
			return true
		}
	}
	return false
}

func (o *Operator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operator) setRFIDCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("rfid code")
	}
	if len(code) > 64 {
		return errs.NewValueIsOutOfRangeError("rfid code length", len(code), 1, 64)
	}
	o.rfidCode = code
	return nil
}

func (o *Operator) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("operator name")
	}
	o.name = name
	return nil
}

func (o *Operator) setWorkCenters(ids []kernel.UUID) error {
	assigned := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		duplicate := false
		for _, existing := range assigned {
			if existing.IsEqual(id) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			assigned = append(assigned, id)
		}
	}
	o.workCenterIDs = assigned
	return nil
}
