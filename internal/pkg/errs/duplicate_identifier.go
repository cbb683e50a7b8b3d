package errs

import "fmt"

// DuplicateIdentifierError reports a unique constraint violation on a generated
// or user supplied identifier. Callers generating identifiers treat it as retryable.
type DuplicateIdentifierError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewDuplicateIdentifierError(paramName string, value any) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{ParamName: paramName, Value: value}
}

func NewDuplicateIdentifierErrorWithCause(paramName string, value any, cause error) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateIdentifierError) Error() string {
	if e.Value == nil {
		return withCause(fmt.Sprintf("%s: %s", ErrDuplicateIdentifier, e.ParamName), e.Cause)
	}
	return withCause(
		fmt.Sprintf("%s: %s is %s", ErrDuplicateIdentifier, e.ParamName, sanitize(e.Value)),
		e.Cause,
	)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}
