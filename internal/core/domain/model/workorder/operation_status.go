package workorder

import (
	"fmt"
	"strings"

	"dietrack/internal/pkg/errs"
)

// OperationStatus is the lifecycle of a single operation.
//
//	Waiting ──> InProgress <──> Paused
//	   │            │             │
//	   │            └──> Completed│
//	   └────────────┴─────────────┴──> Cancelled
//
// Completed is reachable from InProgress only. Completed and Cancelled are terminal.
type OperationStatus int

const (
	UnknownOperationStatus OperationStatus = iota
	OperationWaiting
	OperationInProgress
	OperationPaused
	OperationCancelled
	OperationCompleted
)

func operationStatusNames() map[OperationStatus]string {
	return map[OperationStatus]string{
		UnknownOperationStatus: "Unknown",
		OperationWaiting:       "Waiting",
		OperationInProgress:    "InProgress",
		OperationPaused:        "Paused",
		OperationCancelled:     "Cancelled",
		OperationCompleted:     "Completed",
	}
}

// ParseOperationStatus converts the boundary representation into an OperationStatus.
func ParseOperationStatus(raw string) (OperationStatus, error) {
	for status, name := range operationStatusNames() {
		if status != UnknownOperationStatus && strings.EqualFold(name, strings.TrimSpace(raw)) {
			return status, nil
		}
	}
	return UnknownOperationStatus, errs.NewValueIsInvalidErrorWithCause(
		"operation status",
		fmt.Errorf("%q is not a valid operation status", raw),
	)
}

func (s OperationStatus) String() string {
	if name, ok := operationStatusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

func (s OperationStatus) Validate() error {
	if s <= UnknownOperationStatus || s > OperationCompleted {
		return errs.NewValueIsInvalidErrorWithCause("operation status", fmt.Errorf("%d is not a valid operation status", s))
	}
	return nil
}

func (s OperationStatus) IsTerminal() bool {
	return s == OperationCompleted || s == OperationCancelled
}

// holdsWorkCenter reports whether an operation in this status keeps its work center Busy.
func (s OperationStatus) holdsWorkCenter() bool {
	return s == OperationInProgress || s == OperationPaused
}

func (s OperationStatus) canTransitionTo(target OperationStatus) bool {
	switch target {
	case OperationInProgress:
		return s == OperationWaiting || s == OperationPaused
	case OperationPaused, OperationCompleted:
		return s == OperationInProgress
	case OperationCancelled:
		return s.Validate() == nil && !s.IsTerminal()
	case UnknownOperationStatus, OperationWaiting:
	}
	return false
}
