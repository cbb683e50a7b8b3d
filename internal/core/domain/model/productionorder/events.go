package productionorder

import (
	"time"

	"dietrack/internal/core/domain/model/kernel"
)

const (
	EventTypeExpanded      = "ProductionOrderExpanded"
	EventTypeStatusChanged = "ProductionOrderStatusChanged"
)

// ExpandedEvent is recorded once the order was fanned out into work orders.
type ExpandedEvent struct {
	kernel.BaseEvent
	OrderNumber    string      `json:"order_number"`
	DieID          kernel.UUID `json:"die_id"`
	WorkOrderCount int         `json:"work_order_count"`
}

// StatusChangedEvent is recorded on every operator driven status change.
type StatusChangedEvent struct {
	kernel.BaseEvent
	OrderNumber string `json:"order_number"`
	From        string `json:"from"`
	To          string `json:"to"`
}

func newExpandedEvent(o *ProductionOrder, workOrderCount int, at time.Time) ExpandedEvent {
	return ExpandedEvent{
		BaseEvent:      kernel.NewBaseEvent(EventTypeExpanded, o.id, at),
		OrderNumber:    o.orderNumber,
		DieID:          o.dieID,
		WorkOrderCount: workOrderCount,
	}
}

func newStatusChangedEvent(o *ProductionOrder, from, to kernel.OrderStatus, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:   kernel.NewBaseEvent(EventTypeStatusChanged, o.id, at),
		OrderNumber: o.orderNumber,
		From:        from.String(),
		To:          to.String(),
	}
}
