package componenttype

import (
	"fmt"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

// Step is one row of a component type's bill of materials: an operation template.
// Steps are values; expansion copies them into work order operations.
type Step struct {
	sequenceNumber           int
	operationName            string
	workCenterID             *kernel.UUID
	estimatedDurationMinutes int
	notes                    string
}

// NewStep validates and builds a BOM step. workCenterID is the preferred work center
// and may be nil while the BOM is being drafted.
func NewStep(
	sequenceNumber int,
	operationName string,
	workCenterID *kernel.UUID,
	estimatedDurationMinutes int,
	notes string,
) (Step, error) {
	if sequenceNumber < 1 {
		return Step{}, errs.NewValueIsOutOfRangeError("sequence number", sequenceNumber, 1, "unbounded")
	}
	operationName = strings.TrimSpace(operationName)
	if operationName == "" {
		return Step{}, errs.NewValueIsRequiredError("operation name")
	}
	if workCenterID != nil {
		if err := workCenterID.Validate(); err != nil {
			return Step{}, err
		}
		id := *workCenterID
		workCenterID = &id
	}
	if estimatedDurationMinutes < 0 {
		return Step{}, errs.NewValueIsInvalidErrorWithCause(
			"estimated duration",
			fmt.Errorf("%d minutes is negative", estimatedDurationMinutes),
		)
	}

	return Step{
		sequenceNumber:           sequenceNumber,
		operationName:            operationName,
		workCenterID:             workCenterID,
		estimatedDurationMinutes: estimatedDurationMinutes,
		notes:                    strings.TrimSpace(notes),
	}, nil
}

func (s Step) SequenceNumber() int           { return s.sequenceNumber }
func (s Step) OperationName() string         { return s.operationName }
func (s Step) EstimatedDurationMinutes() int { return s.estimatedDurationMinutes }
func (s Step) Notes() string                 { return s.notes }

// WorkCenterID returns a copy of the preferred work center, nil when none is set.
func (s Step) WorkCenterID() *kernel.UUID {
	if s.workCenterID == nil {
		return nil
	}
	id := *s.workCenterID
	return &id
}
