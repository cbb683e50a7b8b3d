package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrCreateStockItemCommandIsNotConstructed = errors.New(
	"CreateStockItemCommand must be created via NewCreateStockItemCommand constructor",
)

// CreateStockItemCommand catalogues a steel bar by alloy and diameter.
type CreateStockItemCommand struct { //nolint:recvcheck //using for validation
	stockItemID kernel.UUID
	alloy       string
	diameterMm  int
	description string

	guard guard.ConstructorGuard
}

func NewCreateStockItemCommand(
	stockItemID kernel.UUID,
	alloy string,
	diameterMm int,
	description string,
) (CreateStockItemCommand, error) {
	if err := stockItemID.Validate(); err != nil {
		return CreateStockItemCommand{}, err
	}
	return CreateStockItemCommand{
		stockItemID: stockItemID,
		alloy:       alloy,
		diameterMm:  diameterMm,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockItemCommandIsNotConstructed)
}

func (c CreateStockItemCommand) StockItemID() kernel.UUID { return c.stockItemID }
func (c CreateStockItemCommand) Alloy() string            { return c.alloy }
func (c CreateStockItemCommand) DiameterMm() int          { return c.diameterMm }
func (c CreateStockItemCommand) Description() string      { return c.description }
