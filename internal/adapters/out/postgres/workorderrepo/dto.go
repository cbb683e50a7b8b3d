// Package workorderrepo persists work orders together with their operations.
package workorderrepo

import (
	"time"

	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/adapters/out/postgres/lotrepo"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work orders.
// There is at most one work order per production order and die component.
type WorkOrderDTO struct {
	ID                       uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	ProductionOrderID        uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex:idx_work_order_component"`
	ProductionOrder          *productionorderrepo.ProductionOrderDTO `gorm:"foreignKey:ProductionOrderID;constraint:OnDelete:RESTRICT"`
	DieComponentID           uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex:idx_work_order_component"`
	DieComponent             *dierepo.DieComponentDTO                `gorm:"foreignKey:DieComponentID;constraint:OnDelete:RESTRICT"`
	OrderNumber              string                                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status                   string                                  `gorm:"type:varchar(32);not null;index"`
	TheoreticalConsumptionKg float64                                 `gorm:"type:numeric(12,3);not null;default:0"`
	ActualConsumptionKg      float64                                 `gorm:"type:numeric(12,3);not null;default:0"`
	LotID                    *uuid.UUID                              `gorm:"type:uuid;index"`
	Lot                      *lotrepo.LotDTO                         `gorm:"foreignKey:LotID;constraint:OnDelete:RESTRICT"`
	Operations               []OperationDTO                          `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	StockMovements           []lotrepo.StockMovementDTO              `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:RESTRICT"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// OperationDTO is a materialised BOM step plus its runtime state.
type OperationDTO struct {
	ID                       uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	WorkOrderID              uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:idx_operation_sequence"`
	SequenceNumber           int                           `gorm:"type:int;not null;uniqueIndex:idx_operation_sequence"`
	OperationName            string                        `gorm:"type:varchar(100);not null"`
	WorkCenterID             uuid.UUID                     `gorm:"type:uuid;not null;index"`
	WorkCenter               *workcenterrepo.WorkCenterDTO `gorm:"foreignKey:WorkCenterID;constraint:OnDelete:RESTRICT"`
	EstimatedDurationMinutes int                           `gorm:"type:int;not null;default:0"`
	Status                   string                        `gorm:"type:varchar(32);not null;index"`
	OperatorName             string                        `gorm:"type:varchar(100)"`
	Notes                    string                        `gorm:"type:text"`
	StartedAt                *time.Time
	CompletedAt              *time.Time
}

func (OperationDTO) TableName() string {
	return "work_order_operations"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	id := wo.ID().Bytes()

	var lotID *uuid.UUID
	if l := wo.LotID(); l != nil {
		raw := l.Bytes()
		lotID = &raw
	}

	ops := wo.Operations()
	operations := make([]OperationDTO, 0, len(ops))
	for _, op := range ops {
		operations = append(operations, OperationDTO{
			ID:                       op.ID().Bytes(),
			WorkOrderID:              id,
			SequenceNumber:           op.SequenceNumber(),
			OperationName:            op.OperationName(),
			WorkCenterID:             op.WorkCenterID().Bytes(),
			EstimatedDurationMinutes: op.EstimatedDurationMinutes(),
			Status:                   op.Status().String(),
			OperatorName:             op.OperatorName(),
			Notes:                    op.Notes(),
			StartedAt:                op.StartedAt(),
			CompletedAt:              op.CompletedAt(),
		})
	}

	return WorkOrderDTO{
		ID:                       id,
		ProductionOrderID:        wo.ProductionOrderID().Bytes(),
		DieComponentID:           wo.DieComponentID().Bytes(),
		OrderNumber:              wo.OrderNumber(),
		Status:                   wo.Status().String(),
		TheoreticalConsumptionKg: wo.TheoreticalConsumptionKg(),
		ActualConsumptionKg:      wo.ActualConsumptionKg(),
		LotID:                    lotID,
		Operations:               operations,
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productionOrderID, err := kernel.UUIDFromBytes(dto.ProductionOrderID[:])
	if err != nil {
		return nil, err
	}
	dieComponentID, err := kernel.UUIDFromBytes(dto.DieComponentID[:])
	if err != nil {
		return nil, err
	}
	status, err := kernel.ParseOrderStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var lotID *kernel.UUID
	if dto.LotID != nil {
		l, lotErr := kernel.UUIDFromBytes((*dto.LotID)[:])
		if lotErr != nil {
			return nil, lotErr
		}
		lotID = &l
	}

	operations := make([]*workorder.Operation, 0, len(dto.Operations))
	for _, opDTO := range dto.Operations {
		op, opErr := operationToDomain(opDTO)
		if opErr != nil {
			return nil, opErr
		}
		operations = append(operations, op)
	}

	return workorder.RestoreWorkOrder(
		id,
		productionOrderID,
		dieComponentID,
		dto.OrderNumber,
		status,
		dto.TheoreticalConsumptionKg,
		dto.ActualConsumptionKg,
		lotID,
		operations,
	)
}

func operationToDomain(dto OperationDTO) (*workorder.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workCenterID, err := kernel.UUIDFromBytes(dto.WorkCenterID[:])
	if err != nil {
		return nil, err
	}
	status, err := workorder.ParseOperationStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreOperation(
		id,
		dto.SequenceNumber,
		dto.OperationName,
		workCenterID,
		dto.EstimatedDurationMinutes,
		dto.Notes,
		workorder.OperationState{
			Status:       status,
			OperatorName: dto.OperatorName,
			StartedAt:    dto.StartedAt,
			CompletedAt:  dto.CompletedAt,
		},
	)
}
