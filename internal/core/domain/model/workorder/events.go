package workorder

import "dietrack/internal/core/domain/model/kernel"

const EventTypeOperationStatusChanged = "OperationStatusChanged"

// OperationStatusChangedEvent is recorded on the work order for every operation transition.
type OperationStatusChangedEvent struct {
	kernel.BaseEvent
	WorkOrderNumber string      `json:"work_order_number"`
	OperationID     kernel.UUID `json:"operation_id"`
	SequenceNumber  int         `json:"sequence_number"`
	WorkCenterID    kernel.UUID `json:"work_center_id"`
	From            string      `json:"from"`
	To              string      `json:"to"`
	OperatorName    string      `json:"operator_name,omitempty"`
}
