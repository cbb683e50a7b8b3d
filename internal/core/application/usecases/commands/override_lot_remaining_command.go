package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrOverrideLotRemainingCommandIsNotConstructed = errors.New(
	"OverrideLotRemainingCommand must be created via NewOverrideLotRemainingCommand constructor",
)

// OverrideLotRemainingCommand is the administrative correction of a lot after a physical
// stock count. It bypasses the ledger and writes no movement.
type OverrideLotRemainingCommand struct { //nolint:recvcheck //using for validation
	lotID       kernel.UUID
	remainingKg float64

	guard guard.ConstructorGuard
}

func NewOverrideLotRemainingCommand(lotID kernel.UUID, remainingKg float64) (OverrideLotRemainingCommand, error) {
	if err := lotID.Validate(); err != nil {
		return OverrideLotRemainingCommand{}, err
	}
	return OverrideLotRemainingCommand{
		lotID:       lotID,
		remainingKg: remainingKg,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideLotRemainingCommand) Validate() error {
	return c.guard.Validate(ErrOverrideLotRemainingCommandIsNotConstructed)
}

func (c OverrideLotRemainingCommand) LotID() kernel.UUID   { return c.lotID }
func (c OverrideLotRemainingCommand) RemainingKg() float64 { return c.remainingKg }
