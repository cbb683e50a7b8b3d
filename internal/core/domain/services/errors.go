package services

import (
	"errors"
	"fmt"
)

// ErrInvalidExpansionRequest is returned when a production order cannot be expanded.
var ErrInvalidExpansionRequest = errors.New("invalid expansion request")

// InvalidExpansionRequestError carries the failed precondition. It matches both
// ErrInvalidExpansionRequest and its cause with errors.Is.
type InvalidExpansionRequestError struct {
	Reason string
	Cause  error
}

func newInvalidExpansionRequest(cause error, format string, args ...any) *InvalidExpansionRequestError {
	return &InvalidExpansionRequestError{Reason: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *InvalidExpansionRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvalidExpansionRequest, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidExpansionRequest, e.Reason)
}

func (e *InvalidExpansionRequestError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidExpansionRequest, e.Cause}
	}
	return []error{ErrInvalidExpansionRequest}
}
