package workcenter

import (
	"fmt"
	"strings"

	"dietrack/internal/pkg/errs"
)

// Status is the availability of a work center.
//
//	Available <──> Busy
//	    │
//	    └──────<──> UnderMaintenance
type Status int

const (
	Unknown Status = iota
	Available
	Busy
	UnderMaintenance
)

func statusNames() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Available:        "Available",
		Busy:             "Busy",
		UnderMaintenance: "UnderMaintenance",
	}
}

// ParseStatus converts the boundary representation into a Status.
func ParseStatus(raw string) (Status, error) {
	for status, name := range statusNames() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(raw)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("work center status", fmt.Errorf("%q is not a valid status", raw))
}

func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if s <= Unknown || s > UnderMaintenance {
		return errs.NewValueIsInvalidErrorWithCause("work center status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
