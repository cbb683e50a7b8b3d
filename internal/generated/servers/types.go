// Package servers holds the HTTP contract of the service: request and response types, the
// echo routing wrapper that binds path and query parameters, and the embedded OpenAPI
// document describing both.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// CreatedProductionOrder defines model for CreatedProductionOrder.
type CreatedProductionOrder struct {
	Id          openapi_types.UUID `json:"id"`
	OrderNumber string             `json:"orderNumber"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// NewDie defines model for NewDie.
type NewDie struct {
	DieTypeId       openapi_types.UUID `json:"dieTypeId"`
	DieNumber       string             `json:"dieNumber"`
	DiameterMm      float64            `json:"diameterMm"`
	PackageLengthMm float64            `json:"packageLengthMm"`
}

// NewDieComponent defines model for NewDieComponent.
type NewDieComponent struct {
	ComponentTypeId          openapi_types.UUID `json:"componentTypeId"`
	StockItemId              openapi_types.UUID `json:"stockItemId"`
	PackageLengthMm          float64            `json:"packageLengthMm"`
	TheoreticalConsumptionKg float64            `json:"theoreticalConsumptionKg"`
}

// NewDieType defines model for NewDieType.
type NewDieType struct {
	Code             string                `json:"code"`
	Name             string                `json:"name"`
	Description      *string               `json:"description,omitempty"`
	ComponentTypeIds *[]openapi_types.UUID `json:"componentTypeIds,omitempty"`
}

// DieTypeComponentType defines model for DieTypeComponentType.
type DieTypeComponentType struct {
	ComponentTypeId openapi_types.UUID `json:"componentTypeId"`
}

// DieType defines model for DieType.
type DieType struct {
	Id             openapi_types.UUID `json:"id"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	Description    *string            `json:"description,omitempty"`
	IsActive       bool               `json:"isActive"`
	ComponentTypes []ComponentTypeRef `json:"componentTypes"`
}

// ComponentTypeRef defines model for ComponentTypeRef.
type ComponentTypeRef struct {
	Id   openapi_types.UUID `json:"id"`
	Code string             `json:"code"`
	Name string             `json:"name"`
}

// NewComponentType defines model for NewComponentType.
type NewComponentType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewBomStep defines model for NewBomStep.
type NewBomStep struct {
	SequenceNumber           int                 `json:"sequenceNumber"`
	OperationName            string              `json:"operationName"`
	WorkCenterId             *openapi_types.UUID `json:"workCenterId,omitempty"`
	EstimatedDurationMinutes int                 `json:"estimatedDurationMinutes"`
	Notes                    *string             `json:"notes,omitempty"`
}

// NewWorkCenter defines model for NewWorkCenter.
type NewWorkCenter struct {
	Name             string   `json:"name"`
	Type             *string  `json:"type,omitempty"`
	Location         *string  `json:"location,omitempty"`
	CapacityPerHour  *float64 `json:"capacityPerHour,omitempty"`
	SetupTimeMinutes *int     `json:"setupTimeMinutes,omitempty"`
	CostPerHour      *float64 `json:"costPerHour,omitempty"`
}

// QueueItem defines model for QueueItem.
type QueueItem struct {
	OperationId              openapi_types.UUID `json:"operationId"`
	WorkOrderId              openapi_types.UUID `json:"workOrderId"`
	WorkOrderNumber          string             `json:"workOrderNumber"`
	ProductionOrderNumber    string             `json:"productionOrderNumber"`
	SequenceNumber           int                `json:"sequenceNumber"`
	OperationName            string             `json:"operationName"`
	Status                   string             `json:"status"`
	EstimatedDurationMinutes int                `json:"estimatedDurationMinutes"`
	OperatorName             *string            `json:"operatorName,omitempty"`
	StartedAt                *time.Time         `json:"startedAt,omitempty"`
}

// NewProductionOrder defines model for NewProductionOrder.
type NewProductionOrder struct {
	DieId openapi_types.UUID `json:"dieId"`
	Notes *string            `json:"notes,omitempty"`
}

// ProductionOrderSummary defines model for ProductionOrderSummary.
type ProductionOrderSummary struct {
	Id             openapi_types.UUID `json:"id"`
	OrderNumber    string             `json:"orderNumber"`
	DieId          openapi_types.UUID `json:"dieId"`
	DieNumber      string             `json:"dieNumber"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	StartedAt      *time.Time         `json:"startedAt,omitempty"`
	CompletedAt    *time.Time         `json:"completedAt,omitempty"`
	WorkOrderCount int                `json:"workOrderCount"`
}

// ProductionOrder defines model for ProductionOrder.
type ProductionOrder struct {
	Id          openapi_types.UUID `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	DieId       openapi_types.UUID `json:"dieId"`
	DieNumber   string             `json:"dieNumber"`
	Status      string             `json:"status"`
	Notes       *string            `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	StartedAt   *time.Time         `json:"startedAt,omitempty"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	WorkOrders  []WorkOrder        `json:"workOrders"`
}

// WorkOrder defines model for WorkOrder.
type WorkOrder struct {
	Id                       openapi_types.UUID  `json:"id"`
	OrderNumber              string              `json:"orderNumber"`
	DieComponentId           openapi_types.UUID  `json:"dieComponentId"`
	ComponentPosition        int                 `json:"componentPosition"`
	ComponentTypeCode        string              `json:"componentTypeCode"`
	Status                   string              `json:"status"`
	TheoreticalConsumptionKg float64             `json:"theoreticalConsumptionKg"`
	ActualConsumptionKg      float64             `json:"actualConsumptionKg"`
	LotId                    *openapi_types.UUID `json:"lotId,omitempty"`
	Operations               []Operation         `json:"operations"`
}

// Operation defines model for Operation.
type Operation struct {
	Id                       openapi_types.UUID `json:"id"`
	WorkOrderId              openapi_types.UUID `json:"workOrderId"`
	SequenceNumber           int                `json:"sequenceNumber"`
	OperationName            string             `json:"operationName"`
	WorkCenterId             openapi_types.UUID `json:"workCenterId"`
	WorkCenterName           string             `json:"workCenterName"`
	EstimatedDurationMinutes int                `json:"estimatedDurationMinutes"`
	Status                   string             `json:"status"`
	OperatorName             *string            `json:"operatorName,omitempty"`
	Notes                    *string            `json:"notes,omitempty"`
	StartedAt                *time.Time         `json:"startedAt,omitempty"`
	CompletedAt              *time.Time         `json:"completedAt,omitempty"`
}

// OperationState defines model for OperationState.
type OperationState struct {
	Id                       openapi_types.UUID `json:"id"`
	SequenceNumber           int                `json:"sequenceNumber"`
	OperationName            string             `json:"operationName"`
	WorkCenterId             openapi_types.UUID `json:"workCenterId"`
	EstimatedDurationMinutes int                `json:"estimatedDurationMinutes"`
	Status                   string             `json:"status"`
	OperatorName             *string            `json:"operatorName,omitempty"`
	Notes                    *string            `json:"notes,omitempty"`
	StartedAt                *time.Time         `json:"startedAt,omitempty"`
	CompletedAt              *time.Time         `json:"completedAt,omitempty"`
}

// OperationTransition defines model for OperationTransition.
type OperationTransition struct {
	Status       string  `json:"status"`
	OperatorName *string `json:"operatorName,omitempty"`
}

// OperationDetails defines model for OperationDetails.
type OperationDetails struct {
	OperatorName             *string `json:"operatorName,omitempty"`
	Notes                    *string `json:"notes,omitempty"`
	EstimatedDurationMinutes *int    `json:"estimatedDurationMinutes,omitempty"`
}

// NewLot defines model for NewLot.
type NewLot struct {
	StockItemId       openapi_types.UUID `json:"stockItemId"`
	CertificateNumber string             `json:"certificateNumber"`
	Supplier          *string            `json:"supplier,omitempty"`
	LengthMm          *float64           `json:"lengthMm,omitempty"`
	GrossWeightKg     float64            `json:"grossWeightKg"`
	ReceivedDate      *time.Time         `json:"receivedDate,omitempty"`
}

// Lot defines model for Lot.
type Lot struct {
	Id                openapi_types.UUID `json:"id"`
	StockItemId       openapi_types.UUID `json:"stockItemId"`
	Alloy             string             `json:"alloy"`
	DiameterMm        int                `json:"diameterMm"`
	CertificateNumber string             `json:"certificateNumber"`
	Supplier          string             `json:"supplier"`
	LengthMm          float64            `json:"lengthMm"`
	GrossWeightKg     float64            `json:"grossWeightKg"`
	RemainingKg       float64            `json:"remainingKg"`
	ReceivedDate      time.Time          `json:"receivedDate"`
	Movements         []LotMovement      `json:"movements"`
}

// LotMovement defines model for LotMovement.
type LotMovement struct {
	Id              openapi_types.UUID `json:"id"`
	WorkOrderId     openapi_types.UUID `json:"workOrderId"`
	WorkOrderNumber string             `json:"workOrderNumber"`
	QuantityKg      float64            `json:"quantityKg"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// NewStockMovement defines model for NewStockMovement.
type NewStockMovement struct {
	WorkOrderId openapi_types.UUID `json:"workOrderId"`
	QuantityKg  float64            `json:"quantityKg"`
	Notes       *string            `json:"notes,omitempty"`
}

// StockMovement defines model for StockMovement.
type StockMovement struct {
	Id          openapi_types.UUID `json:"id"`
	LotId       openapi_types.UUID `json:"lotId"`
	WorkOrderId openapi_types.UUID `json:"workOrderId"`
	QuantityKg  float64            `json:"quantityKg"`
	Notes       *string            `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// RemainingOverride defines model for RemainingOverride.
type RemainingOverride struct {
	RemainingKg float64 `json:"remainingKg"`
}

// NewStockItem defines model for NewStockItem.
type NewStockItem struct {
	Alloy       string  `json:"alloy"`
	DiameterMm  int     `json:"diameterMm"`
	Description *string `json:"description,omitempty"`
}

// StockItem defines model for StockItem.
type StockItem struct {
	Id           openapi_types.UUID `json:"id"`
	Alloy        string             `json:"alloy"`
	DiameterMm   int                `json:"diameterMm"`
	Description  *string            `json:"description,omitempty"`
	LotCount     int                `json:"lotCount"`
	OpenLotCount int                `json:"openLotCount"`
	RemainingKg  float64            `json:"remainingKg"`
}

// NewOperator defines model for NewOperator.
type NewOperator struct {
	RfidCode       string                `json:"rfidCode"`
	Name           string                `json:"name"`
	EmployeeNumber *string               `json:"employeeNumber,omitempty"`
	WorkCenterIds  *[]openapi_types.UUID `json:"workCenterIds,omitempty"`
}

// OperatorChanges defines model for OperatorChanges.
type OperatorChanges struct {
	RfidCode       *string               `json:"rfidCode,omitempty"`
	Name           *string               `json:"name,omitempty"`
	EmployeeNumber *string               `json:"employeeNumber,omitempty"`
	IsActive       *bool                 `json:"isActive,omitempty"`
	WorkCenterIds  *[]openapi_types.UUID `json:"workCenterIds,omitempty"`
}

// Operator defines model for Operator.
type Operator struct {
	Id             openapi_types.UUID   `json:"id"`
	RfidCode       string               `json:"rfidCode"`
	Name           string               `json:"name"`
	EmployeeNumber *string              `json:"employeeNumber,omitempty"`
	IsActive       bool                 `json:"isActive"`
	WorkCenterIds  []openapi_types.UUID `json:"workCenterIds"`
}

// OperatorLogin defines model for OperatorLogin.
type OperatorLogin struct {
	RfidCode string `json:"rfidCode"`
}

// OperatorSession defines model for OperatorSession.
type OperatorSession struct {
	OperatorId     openapi_types.UUID `json:"operatorId"`
	Name           string             `json:"name"`
	EmployeeNumber *string            `json:"employeeNumber,omitempty"`
	WorkCenters    []WorkCenterRef    `json:"workCenters"`
}

// WorkCenterRef defines model for WorkCenterRef.
type WorkCenterRef struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// StatusFilterParams carries the optional repeated status query parameter.
type StatusFilterParams struct {
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}

// GetWorkCenterQueueParams defines parameters for GetWorkCenterQueue.
type GetWorkCenterQueueParams = StatusFilterParams

// ListProductionOrdersParams defines parameters for ListProductionOrders.
type ListProductionOrdersParams = StatusFilterParams

// RecordStockMovementParams defines parameters for RecordStockMovement.
type RecordStockMovementParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// ListDieTypesParams defines parameters for ListDieTypes.
type ListDieTypesParams struct {
	IncludeInactive *bool `form:"includeInactive,omitempty" json:"includeInactive,omitempty"`
}
