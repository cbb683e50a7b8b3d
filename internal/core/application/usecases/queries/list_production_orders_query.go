package queries

import (
	"errors"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrListProductionOrdersQueryIsNotConstructed = errors.New(
	"ListProductionOrdersQuery must be created via NewListProductionOrdersQuery constructor",
)

// ListProductionOrdersQuery lists production orders, newest first. Without statuses every
// order is returned.
//
// Example:
//
//	query, _ := NewListProductionOrdersQuery(kernel.OrderWaiting, kernel.OrderInProgress)
//	orders, err := handler.Handle(ctx, query)
type ListProductionOrdersQuery struct {
	statuses []kernel.OrderStatus

	guard guard.ConstructorGuard
}

func NewListProductionOrdersQuery(statuses ...kernel.OrderStatus) (ListProductionOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListProductionOrdersQuery{}, err
		}
	}
	return ListProductionOrdersQuery{
		statuses: append([]kernel.OrderStatus(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListProductionOrdersQueryIsNotConstructed)
}

func (q ListProductionOrdersQuery) Statuses() []kernel.OrderStatus {
	return append([]kernel.OrderStatus(nil), q.statuses...)
}

// ListProductionOrdersQueryResponse is one row of the production order list.
type ListProductionOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	DieID          kernel.UUID
	DieNumber      string
	Status         kernel.OrderStatus
	CreatedAt      time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	WorkOrderCount int
}
