package die

import (
	"fmt"
	"strings"

	"dietrack/internal/pkg/errs"
)

// Status is the lifecycle of a die design.
//
//	Draft ──> Waiting ──> Ready ──> InProduction ──> Completed
//	  │          │                      ^
//	  └──────────┴──────────────────────┘  (expansion starts production directly)
type Status int

const (
	Unknown Status = iota
	Draft
	Waiting
	Ready
	InProduction
	Completed
)

func statusNames() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Draft:        "Draft",
		Waiting:      "Waiting",
		Ready:        "Ready",
		InProduction: "InProduction",
		Completed:    "Completed",
	}
}

// ParseStatus converts the boundary representation into a Status.
func ParseStatus(raw string) (Status, error) {
	for status, name := range statusNames() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(raw)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("die status", fmt.Errorf("%q is not a valid status", raw))
}

func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("die status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// AcceptsComponents reports whether the bill of components can still change.
func (s Status) AcceptsComponents() bool {
	return s == Draft || s == Waiting || s == Ready
}

// Submit moves a Draft die to Waiting.
func (s Status) Submit() (Status, error) {
	if s != Draft {
		return Unknown, invalidTransition(s, Waiting)
	}
	return Waiting, nil
}

// MarkReady moves a Waiting die to Ready.
func (s Status) MarkReady() (Status, error) {
	if s != Waiting {
		return Unknown, invalidTransition(s, Ready)
	}
	return Ready, nil
}

// StartProduction is reached by expanding a production order. A die that is already
// InProduction stays there so that a second build attempt can run.
func (s Status) StartProduction() (Status, error) {
	if s.Validate() != nil || s == Completed {
		return Unknown, invalidTransition(s, InProduction)
	}
	return InProduction, nil
}

// Complete finishes production of the die.
func (s Status) Complete() (Status, error) {
	if s != InProduction {
		return Unknown, invalidTransition(s, Completed)
	}
	return Completed, nil
}

// TransitionTo dispatches an operator requested status change.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Waiting:
		return s.Submit()
	case Ready:
		return s.MarkReady()
	case InProduction:
		return s.StartProduction()
	case Completed:
		return s.Complete()
	case Draft, Unknown:
	}
	return Unknown, invalidTransition(s, target)
}

func invalidTransition(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause("die status", fmt.Errorf("cannot change status from %s to %s", from, to))
}
