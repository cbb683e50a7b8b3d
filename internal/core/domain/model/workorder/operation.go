package workorder

import (
	"errors"
	"strings"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")

// Operation is one sequenced task of a work order. The template fields are a snapshot of
// the BOM step taken at expansion time; later BOM edits never reach an existing operation.
type Operation struct {
	id                       kernel.UUID
	sequenceNumber           int
	operationName            string
	workCenterID             kernel.UUID
	estimatedDurationMinutes int
	status                   OperationStatus
	operatorName             string
	notes                    string
	startedAt                *time.Time
	completedAt              *time.Time
	isConstructed            bool
}

// NewOperation creates a Waiting operation.
func NewOperation(
	id kernel.UUID,
	sequenceNumber int,
	operationName string,
	workCenterID kernel.UUID,
	estimatedDurationMinutes int,
	notes string,
) (*Operation, error) {
	op := &Operation{
		status:        OperationWaiting,
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	op.id = id

	if sequenceNumber < 1 {
		return nil, errs.NewValueIsOutOfRangeError("sequence number", sequenceNumber, 1, "unbounded")
	}
	op.sequenceNumber = sequenceNumber

	if op.operationName = strings.TrimSpace(operationName); op.operationName == "" {
		return nil, errs.NewValueIsRequiredError("operation name")
	}
	if err := workCenterID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("work center", err)
	}
	op.workCenterID = workCenterID

	if err := op.setEstimatedDuration(estimatedDurationMinutes); err != nil {
		return nil, err
	}
	return op, nil
}

// OperationState carries the runtime fields of a persisted operation.
type OperationState struct {
	Status       OperationStatus
	OperatorName string
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// RestoreOperation rebuilds an operation from persistence.
func RestoreOperation(
	id kernel.UUID,
	sequenceNumber int,
	operationName string,
	workCenterID kernel.UUID,
	estimatedDurationMinutes int,
	notes string,
	state OperationState,
) (*Operation, error) {
	op, err := NewOperation(id, sequenceNumber, operationName, workCenterID, estimatedDurationMinutes, notes)
	if err != nil {
		return nil, err
	}
	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	op.status = state.Status
	op.operatorName = strings.TrimSpace(state.OperatorName)
	op.startedAt = copyTime(state.StartedAt)
	op.completedAt = copyTime(state.CompletedAt)
	return op, nil
}

func (o *Operation) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

func (o *Operation) ID() kernel.UUID               { return o.id }
func (o *Operation) SequenceNumber() int           { return o.sequenceNumber }
func (o *Operation) OperationName() string         { return o.operationName }
func (o *Operation) WorkCenterID() kernel.UUID     { return o.workCenterID }
func (o *Operation) EstimatedDurationMinutes() int { return o.estimatedDurationMinutes }
func (o *Operation) Status() OperationStatus       { return o.status }
func (o *Operation) OperatorName() string          { return o.operatorName }
func (o *Operation) Notes() string                 { return o.notes }
func (o *Operation) StartedAt() *time.Time         { return copyTime(o.startedAt) }
func (o *Operation) CompletedAt() *time.Time       { return copyTime(o.completedAt) }

func (o *Operation) setEstimatedDuration(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsOutOfRangeError("estimated duration minutes", minutes, 0, "unbounded")
	}
	o.estimatedDurationMinutes = minutes
	return nil
}

func (o *Operation) clone() *Operation {
	c := *o
	c.startedAt = copyTime(o.startedAt)
	c.completedAt = copyTime(o.completedAt)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
