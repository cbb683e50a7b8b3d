package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrExpandProductionOrderCommandIsNotConstructed = errors.New(
	"ExpandProductionOrderCommand must be created via NewExpandProductionOrderCommand constructor",
)

// ExpandProductionOrderCommand turns a Waiting production order into work orders and
// operations.
type ExpandProductionOrderCommand struct { //nolint:recvcheck //using for validation
	productionOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewExpandProductionOrderCommand(productionOrderID kernel.UUID) (ExpandProductionOrderCommand, error) {
	if err := productionOrderID.Validate(); err != nil {
		return ExpandProductionOrderCommand{}, err
	}
	return ExpandProductionOrderCommand{
		productionOrderID: productionOrderID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c ExpandProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrExpandProductionOrderCommandIsNotConstructed)
}

func (c ExpandProductionOrderCommand) ProductionOrderID() kernel.UUID {
	return c.productionOrderID
}
