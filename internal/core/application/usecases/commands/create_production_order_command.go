package commands

import (
	"errors"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrCreateProductionOrderCommandIsNotConstructed = errors.New(
	"CreateProductionOrderCommand must be created via NewCreateProductionOrderCommand constructor",
)

// CreateProductionOrderCommand opens a Waiting production order for a die. The order
// number is generated by the handler.
//
// Example:
//
//	cmd, err := NewCreateProductionOrderCommand(kernel.NewUUID(), dieID, "rush")
//	if err != nil {
//	    return err
//	}
//	number, err := handler.Handle(ctx, cmd) // UE-1100-003
type CreateProductionOrderCommand struct { //nolint:recvcheck //using for validation
	productionOrderID kernel.UUID
	dieID             kernel.UUID
	notes             string

	guard guard.ConstructorGuard
}

func NewCreateProductionOrderCommand(
	productionOrderID, dieID kernel.UUID,
	notes string,
) (CreateProductionOrderCommand, error) {
	if err := errors.Join(productionOrderID.Validate(), dieID.Validate()); err != nil {
		return CreateProductionOrderCommand{}, err
	}
	return CreateProductionOrderCommand{
		productionOrderID: productionOrderID,
		dieID:             dieID,
		notes:             strings.TrimSpace(notes),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionOrderCommandIsNotConstructed)
}

func (c CreateProductionOrderCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }
func (c CreateProductionOrderCommand) DieID() kernel.UUID             { return c.dieID }
func (c CreateProductionOrderCommand) Notes() string                  { return c.notes }
