package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrChangeProductionOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeProductionOrderStatusCommand must be created via NewChangeProductionOrderStatusCommand constructor",
)

// ChangeProductionOrderStatusCommand is the operator driven completion or cancellation of
// a production order. Work orders are not rolled up.
type ChangeProductionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	productionOrderID kernel.UUID
	status            kernel.OrderStatus

	guard guard.ConstructorGuard
}

func NewChangeProductionOrderStatusCommand(
	productionOrderID kernel.UUID,
	status kernel.OrderStatus,
) (ChangeProductionOrderStatusCommand, error) {
	if err := errors.Join(productionOrderID.Validate(), status.Validate()); err != nil {
		return ChangeProductionOrderStatusCommand{}, err
	}
	return ChangeProductionOrderStatusCommand{
		productionOrderID: productionOrderID,
		status:            status,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductionOrderStatusCommandIsNotConstructed)
}

func (c ChangeProductionOrderStatusCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }
func (c ChangeProductionOrderStatusCommand) Status() kernel.OrderStatus     { return c.status }
