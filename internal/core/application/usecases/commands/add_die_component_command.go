package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrAddDieComponentCommandIsNotConstructed = errors.New(
	"AddDieComponentCommand must be created via NewAddDieComponentCommand constructor",
)

// AddDieComponentCommand appends a component to a die. The component gets the next
// position, which is the order in which expansion numbers the work orders.
type AddDieComponentCommand struct { //nolint:recvcheck //using for validation
	dieID                    kernel.UUID
	componentID              kernel.UUID
	componentTypeID          kernel.UUID
	stockItemID              kernel.UUID
	packageLengthMm          float64
	theoreticalConsumptionKg float64

	guard guard.ConstructorGuard
}

func NewAddDieComponentCommand(
	dieID, componentID, componentTypeID, stockItemID kernel.UUID,
	packageLengthMm, theoreticalConsumptionKg float64,
) (AddDieComponentCommand, error) {
	if err := errors.Join(
		dieID.Validate(),
		componentID.Validate(),
		componentTypeID.Validate(),
		stockItemID.Validate(),
	); err != nil {
		return AddDieComponentCommand{}, err
	}

	return AddDieComponentCommand{
		dieID:                    dieID,
		componentID:              componentID,
		componentTypeID:          componentTypeID,
		stockItemID:              stockItemID,
		packageLengthMm:          packageLengthMm,
		theoreticalConsumptionKg: theoreticalConsumptionKg,
		guard:                    guard.NewConstructorGuard(),
	}, nil
}

func (c AddDieComponentCommand) Validate() error {
	return c.guard.Validate(ErrAddDieComponentCommandIsNotConstructed)
}

func (c AddDieComponentCommand) DieID() kernel.UUID                { return c.dieID }
func (c AddDieComponentCommand) ComponentID() kernel.UUID          { return c.componentID }
func (c AddDieComponentCommand) ComponentTypeID() kernel.UUID      { return c.componentTypeID }
func (c AddDieComponentCommand) StockItemID() kernel.UUID          { return c.stockItemID }
func (c AddDieComponentCommand) PackageLengthMm() float64          { return c.packageLengthMm }
func (c AddDieComponentCommand) TheoreticalConsumptionKg() float64 { return c.theoreticalConsumptionKg }
