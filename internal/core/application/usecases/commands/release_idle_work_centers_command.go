package commands

import (
	"errors"

	"dietrack/internal/pkg/guard"
)

var ErrReleaseIdleWorkCentersCommandIsNotConstructed = errors.New(
	"ReleaseIdleWorkCentersCommand must be created via NewReleaseIdleWorkCentersCommand constructor",
)

// ReleaseIdleWorkCentersCommand is the periodic housekeeping that frees Busy work centers
// no running operation holds, e.g. after an operation was edited outside the state machine.
type ReleaseIdleWorkCentersCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseIdleWorkCentersCommand() ReleaseIdleWorkCentersCommand {
	return ReleaseIdleWorkCentersCommand{guard: guard.NewConstructorGuard()}
}

func (c ReleaseIdleWorkCentersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseIdleWorkCentersCommandIsNotConstructed)
}
