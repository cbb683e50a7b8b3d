package workorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSequenceDependencyViolation is the sentinel behind SequenceDependencyViolationError.
var ErrSequenceDependencyViolation = errors.New("sequence dependency violation")

// SequenceDependencyViolationError lists the lower sequence operations that are not yet
// Completed and therefore block an operation from starting.
type SequenceDependencyViolationError struct {
	SequenceNumber   int
	BlockingSequence []int
}

func (e *SequenceDependencyViolationError) Error() string {
	blocking := make([]string, 0, len(e.BlockingSequence))
	for _, seq := range e.BlockingSequence {
		blocking = append(blocking, strconv.Itoa(seq))
	}
	return fmt.Sprintf("%s: operation %d is blocked by operation(s) %s",
		ErrSequenceDependencyViolation, e.SequenceNumber, strings.Join(blocking, ", "))
}

func (e *SequenceDependencyViolationError) Unwrap() error {
	return ErrSequenceDependencyViolation
}
