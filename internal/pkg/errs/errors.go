package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every structured error in this package unwraps to one of them,
// so callers can branch with errors.Is without knowing the concrete type.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrPersistenceConflict = errors.New("persistence conflict")
)

// sanitize flattens values that end up inside single-line error messages.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause.Error())
}
