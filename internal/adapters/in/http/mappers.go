package http

import (
	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toKernelUUID converts a bound path or body identifier. The nil UUID maps to the zero
// kernel.UUID, which every command and query constructor rejects.
func toKernelUUID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func toKernelUUIDs(ids *[]openapi_types.UUID) []kernel.UUID {
	if ids == nil {
		return nil
	}
	out := make([]kernel.UUID, len(*ids))
	for i, id := range *ids {
		out[i] = toKernelUUID(id)
	}
	return out
}

func parseStatuses[T any](raw *[]string, parse func(string) (T, error)) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	statuses := make([]T, 0, len(*raw))
	for _, value := range *raw {
		status, err := parse(value)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toProductionOrderSummary(order queries.ListProductionOrdersQueryResponse) servers.ProductionOrderSummary {
	return servers.ProductionOrderSummary{
		Id:             order.ID.Bytes(),
		OrderNumber:    order.OrderNumber,
		DieId:          order.DieID.Bytes(),
		DieNumber:      order.DieNumber,
		Status:         order.Status.String(),
		CreatedAt:      order.CreatedAt,
		StartedAt:      order.StartedAt,
		CompletedAt:    order.CompletedAt,
		WorkOrderCount: order.WorkOrderCount,
	}
}

func toProductionOrder(order *queries.GetProductionOrderQueryResponse) servers.ProductionOrder {
	workOrders := make([]servers.WorkOrder, len(order.WorkOrders))
	for i, wo := range order.WorkOrders {
		var lotID *openapi_types.UUID
		if wo.LotID != nil {
			id := wo.LotID.Bytes()
			lotID = &id
		}
		workOrders[i] = servers.WorkOrder{
			Id:                       wo.ID.Bytes(),
			OrderNumber:              wo.OrderNumber,
			DieComponentId:           wo.DieComponentID.Bytes(),
			ComponentPosition:        wo.ComponentPosition,
			ComponentTypeCode:        wo.ComponentTypeCode,
			Status:                   wo.Status.String(),
			TheoreticalConsumptionKg: wo.TheoreticalConsumptionKg,
			ActualConsumptionKg:      wo.ActualConsumptionKg,
			LotId:                    lotID,
			Operations:               toOperations(wo.Operations),
		}
	}

	return servers.ProductionOrder{
		Id:          order.ID.Bytes(),
		OrderNumber: order.OrderNumber,
		DieId:       order.DieID.Bytes(),
		DieNumber:   order.DieNumber,
		Status:      order.Status.String(),
		Notes:       optional(order.Notes),
		CreatedAt:   order.CreatedAt,
		StartedAt:   order.StartedAt,
		CompletedAt: order.CompletedAt,
		WorkOrders:  workOrders,
	}
}

func toOperations(views []queries.OperationView) []servers.Operation {
	operations := make([]servers.Operation, len(views))
	for i, op := range views {
		operations[i] = servers.Operation{
			Id:                       op.ID.Bytes(),
			WorkOrderId:              op.WorkOrderID.Bytes(),
			SequenceNumber:           op.SequenceNumber,
			OperationName:            op.OperationName,
			WorkCenterId:             op.WorkCenterID.Bytes(),
			WorkCenterName:           op.WorkCenterName,
			EstimatedDurationMinutes: op.EstimatedDurationMinutes,
			Status:                   op.Status.String(),
			OperatorName:             optional(op.OperatorName),
			Notes:                    optional(op.Notes),
			StartedAt:                op.StartedAt,
			CompletedAt:              op.CompletedAt,
		}
	}
	return operations
}

func toOperationState(op *workorder.Operation) servers.OperationState {
	return servers.OperationState{
		Id:                       op.ID().Bytes(),
		SequenceNumber:           op.SequenceNumber(),
		OperationName:            op.OperationName(),
		WorkCenterId:             op.WorkCenterID().Bytes(),
		EstimatedDurationMinutes: op.EstimatedDurationMinutes(),
		Status:                   op.Status().String(),
		OperatorName:             optional(op.OperatorName()),
		Notes:                    optional(op.Notes()),
		StartedAt:                op.StartedAt(),
		CompletedAt:              op.CompletedAt(),
	}
}

func toQueueItem(item queries.WorkCenterQueueItem) servers.QueueItem {
	return servers.QueueItem{
		OperationId:              item.OperationID.Bytes(),
		WorkOrderId:              item.WorkOrderID.Bytes(),
		WorkOrderNumber:          item.WorkOrderNumber,
		ProductionOrderNumber:    item.ProductionOrderNumber,
		SequenceNumber:           item.SequenceNumber,
		OperationName:            item.OperationName,
		Status:                   item.Status.String(),
		EstimatedDurationMinutes: item.EstimatedDurationMinutes,
		OperatorName:             optional(item.OperatorName),
		StartedAt:                item.StartedAt,
	}
}

func toLot(lot *queries.GetLotQueryResponse) servers.Lot {
	movements := make([]servers.LotMovement, len(lot.Movements))
	for i, m := range lot.Movements {
		movements[i] = servers.LotMovement{
			Id:              m.ID.Bytes(),
			WorkOrderId:     m.WorkOrderID.Bytes(),
			WorkOrderNumber: m.WorkOrderNumber,
			QuantityKg:      m.QuantityKg,
			Notes:           optional(m.Notes),
			CreatedAt:       m.CreatedAt,
		}
	}

	return servers.Lot{
		Id:                lot.ID.Bytes(),
		StockItemId:       lot.StockItemID.Bytes(),
		Alloy:             lot.Alloy,
		DiameterMm:        lot.DiameterMm,
		CertificateNumber: lot.CertificateNumber,
		Supplier:          lot.Supplier,
		LengthMm:          lot.LengthMm,
		GrossWeightKg:     lot.GrossWeightKg,
		RemainingKg:       lot.RemainingKg,
		ReceivedDate:      lot.ReceivedDate,
		Movements:         movements,
	}
}

func toStockMovement(m *inventory.StockMovement) servers.StockMovement {
	return servers.StockMovement{
		Id:          m.ID().Bytes(),
		LotId:       m.LotID().Bytes(),
		WorkOrderId: m.WorkOrderID().Bytes(),
		QuantityKg:  m.QuantityKg(),
		Notes:       optional(m.Notes()),
		CreatedAt:   m.CreatedAt(),
	}
}

func toDieType(dt queries.DieTypeView) servers.DieType {
	refs := make([]servers.ComponentTypeRef, len(dt.ComponentTypes))
	for i, ref := range dt.ComponentTypes {
		refs[i] = servers.ComponentTypeRef{Id: ref.ID.Bytes(), Code: ref.Code, Name: ref.Name}
	}
	return servers.DieType{
		Id:             dt.ID.Bytes(),
		Code:           dt.Code,
		Name:           dt.Name,
		Description:    optional(dt.Description),
		IsActive:       dt.IsActive,
		ComponentTypes: refs,
	}
}

func toStockItem(item queries.StockItemView) servers.StockItem {
	return servers.StockItem{
		Id:           item.ID.Bytes(),
		Alloy:        item.Alloy,
		DiameterMm:   item.DiameterMm,
		Description:  optional(item.Description),
		LotCount:     item.LotCount,
		OpenLotCount: item.OpenLotCount,
		RemainingKg:  item.RemainingKg,
	}
}

func toOperator(o *operator.Operator) servers.Operator {
	assigned := o.WorkCenterIDs()
	ids := make([]openapi_types.UUID, len(assigned))
	for i, id := range assigned {
		ids[i] = id.Bytes()
	}
	return servers.Operator{
		Id:             o.ID().Bytes(),
		RfidCode:       o.RFIDCode(),
		Name:           o.Name(),
		EmployeeNumber: optional(o.EmployeeNumber()),
		IsActive:       o.IsActive(),
		WorkCenterIds:  ids,
	}
}

func toOperatorSession(session *queries.OperatorSession) servers.OperatorSession {
	workCenters := make([]servers.WorkCenterRef, len(session.WorkCenters))
	for i, wc := range session.WorkCenters {
		workCenters[i] = servers.WorkCenterRef{Id: wc.ID.Bytes(), Name: wc.Name}
	}
	return servers.OperatorSession{
		OperatorId:     session.OperatorID.Bytes(),
		Name:           session.Name,
		EmployeeNumber: optional(session.EmployeeNumber),
		WorkCenters:    workCenters,
	}
}
