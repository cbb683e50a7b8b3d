package inventory

import "dietrack/internal/core/domain/model/kernel"

const EventTypeStockMovementRecorded = "StockMovementRecorded"

// StockMovementRecordedEvent is recorded on the lot for every debit.
type StockMovementRecordedEvent struct {
	kernel.BaseEvent
	MovementID  kernel.UUID `json:"movement_id"`
	WorkOrderID kernel.UUID `json:"work_order_id"`
	QuantityKg  float64     `json:"quantity_kg"`
	RemainingKg float64     `json:"remaining_kg"`
}
