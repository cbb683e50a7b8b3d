package queries

import (
	"errors"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrGetProductionOrderQueryIsNotConstructed = errors.New(
	"GetProductionOrderQuery must be created via NewGetProductionOrderQuery constructor",
)

// GetProductionOrderQuery retrieves one production order with its work orders and their
// operations.
//
// Example:
//
//	query, err := NewGetProductionOrderQuery(poID)
//	if err != nil {
//	    return err
//	}
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown production order
//	}
type GetProductionOrderQuery struct {
	productionOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductionOrderQuery(productionOrderID kernel.UUID) (GetProductionOrderQuery, error) {
	if err := productionOrderID.Validate(); err != nil {
		return GetProductionOrderQuery{}, err
	}
	return GetProductionOrderQuery{
		productionOrderID: productionOrderID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrderQueryIsNotConstructed)
}

func (q GetProductionOrderQuery) ProductionOrderID() kernel.UUID { return q.productionOrderID }

// GetProductionOrderQueryResponse is the production order read model. Work orders are
// ordered by order number, operations by sequence number.
type GetProductionOrderQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	DieID       kernel.UUID
	DieNumber   string
	Status      kernel.OrderStatus
	Notes       string
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	WorkOrders  []WorkOrderView
}

// WorkOrderView is one work order of a production order.
type WorkOrderView struct {
	ID                       kernel.UUID
	OrderNumber              string
	DieComponentID           kernel.UUID
	ComponentPosition        int
	ComponentTypeCode        string
	Status                   kernel.OrderStatus
	TheoreticalConsumptionKg float64
	ActualConsumptionKg      float64
	LotID                    *kernel.UUID
	Operations               []OperationView
}
