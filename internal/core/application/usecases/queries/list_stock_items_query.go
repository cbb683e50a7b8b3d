package queries

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrListStockItemsQueryIsNotConstructed = errors.New(
	"ListStockItemsQuery must be created via NewListStockItemsQuery constructor",
)

// ListStockItemsQuery lists the steel bar catalogue by alloy and diameter with the stock
// still on hand for each bar.
type ListStockItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListStockItemsQuery() (ListStockItemsQuery, error) {
	return ListStockItemsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrListStockItemsQueryIsNotConstructed)
}

// StockItemView is one catalogued bar. OpenLotCount counts lots with material left and
// RemainingKg sums what is left across them.
type StockItemView struct {
	ID           kernel.UUID
	Alloy        string
	DiameterMm   int
	Description  string
	LotCount     int
	OpenLotCount int
	RemainingKg  float64
}
