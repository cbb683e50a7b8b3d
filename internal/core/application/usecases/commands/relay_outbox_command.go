package commands

import (
	"errors"

	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes one batch of pending integration events.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize < 1 {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
