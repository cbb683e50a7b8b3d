package errs

import "fmt"

// PersistenceConflictError reports a transaction aborted by the store because of a
// concurrent modification (serialization failure, deadlock). The operation can be retried.
type PersistenceConflictError struct {
	Operation string
	Cause     error
}

func NewPersistenceConflictError(operation string) *PersistenceConflictError {
	return &PersistenceConflictError{Operation: operation}
}

func NewPersistenceConflictErrorWithCause(operation string, cause error) *PersistenceConflictError {
	return &PersistenceConflictError{Operation: operation, Cause: cause}
}

func (e *PersistenceConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPersistenceConflict, e.Operation), e.Cause)
}

func (e *PersistenceConflictError) Unwrap() error {
	return ErrPersistenceConflict
}
