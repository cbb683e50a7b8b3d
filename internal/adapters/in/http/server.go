package http

import (
	"log/slog"
	"net/http"
	"time"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
// Request bodies are translated into commands and queries, results into API models.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// CreateDie handles POST /api/v1/dies.
func (s *Server) CreateDie(ctx echo.Context) error {
	var body servers.NewDie
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDieCommand(
		id, toKernelUUID(body.DieTypeId), body.DieNumber, body.DiameterMm, body.PackageLengthMm,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateDie.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// AddDieComponent handles POST /api/v1/dies/{dieId}/components.
func (s *Server) AddDieComponent(ctx echo.Context, dieID openapi_types.UUID) error {
	var body servers.NewDieComponent
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddDieComponentCommand(
		toKernelUUID(dieID), id, toKernelUUID(body.ComponentTypeId), toKernelUUID(body.StockItemId),
		body.PackageLengthMm, body.TheoreticalConsumptionKg,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddDieComponent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// ChangeDieStatus handles PATCH /api/v1/dies/{dieId}/status.
func (s *Server) ChangeDieStatus(ctx echo.Context, dieID openapi_types.UUID) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	status, err := die.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeDieStatusCommand(toKernelUUID(dieID), status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeDieStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListDieTypes handles GET /api/v1/die-types.
func (s *Server) ListDieTypes(ctx echo.Context, params servers.ListDieTypesParams) error {
	query, err := queries.NewListDieTypesQuery(deref(params.IncludeInactive))
	if err != nil {
		return s.fail(ctx, err)
	}

	dieTypes, err := s.h.ListDieTypes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.DieType, len(dieTypes))
	for i, dt := range dieTypes {
		out[i] = toDieType(dt)
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateDieType handles POST /api/v1/die-types.
func (s *Server) CreateDieType(ctx echo.Context) error {
	var body servers.NewDieType
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDieTypeCommand(
		id, body.Code, body.Name, deref(body.Description), toKernelUUIDs(body.ComponentTypeIds),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateDieType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// AddDieTypeComponentType handles POST /api/v1/die-types/{dieTypeId}/component-types.
func (s *Server) AddDieTypeComponentType(ctx echo.Context, dieTypeID openapi_types.UUID) error {
	var body servers.DieTypeComponentType
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewAddDieTypeComponentCommand(toKernelUUID(dieTypeID), toKernelUUID(body.ComponentTypeId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeDieTypeComponent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDieTypeComponentType handles
// DELETE /api/v1/die-types/{dieTypeId}/component-types/{componentTypeId}.
func (s *Server) RemoveDieTypeComponentType(
	ctx echo.Context,
	dieTypeID openapi_types.UUID,
	componentTypeID openapi_types.UUID,
) error {
	cmd, err := commands.NewRemoveDieTypeComponentCommand(toKernelUUID(dieTypeID), toKernelUUID(componentTypeID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeDieTypeComponent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateComponentType handles POST /api/v1/component-types.
func (s *Server) CreateComponentType(ctx echo.Context) error {
	var body servers.NewComponentType
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateComponentTypeCommand(id, body.Code, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateComponentType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// AddBomStep handles POST /api/v1/component-types/{componentTypeId}/bom-steps.
func (s *Server) AddBomStep(ctx echo.Context, componentTypeID openapi_types.UUID) error {
	var body servers.NewBomStep
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	var workCenterID *kernel.UUID
	if body.WorkCenterId != nil {
		id := toKernelUUID(*body.WorkCenterId)
		workCenterID = &id
	}

	cmd, err := commands.NewAddBOMStepCommand(
		toKernelUUID(componentTypeID),
		body.SequenceNumber,
		body.OperationName,
		workCenterID,
		body.EstimatedDurationMinutes,
		deref(body.Notes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddBOMStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveBomStep handles DELETE /api/v1/component-types/{componentTypeId}/bom-steps/{sequenceNumber}.
func (s *Server) RemoveBomStep(ctx echo.Context, componentTypeID openapi_types.UUID, sequenceNumber int) error {
	cmd, err := commands.NewRemoveBOMStepCommand(toKernelUUID(componentTypeID), sequenceNumber)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveBOMStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWorkCenter handles POST /api/v1/work-centers.
func (s *Server) CreateWorkCenter(ctx echo.Context) error {
	var body servers.NewWorkCenter
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkCenterCommand(id, body.Name, workcenter.Attributes{
		Type:             deref(body.Type),
		Location:         deref(body.Location),
		CapacityPerHour:  deref(body.CapacityPerHour),
		SetupTimeMinutes: deref(body.SetupTimeMinutes),
		CostPerHour:      deref(body.CostPerHour),
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateWorkCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// ChangeWorkCenterStatus handles PATCH /api/v1/work-centers/{workCenterId}/status.
func (s *Server) ChangeWorkCenterStatus(ctx echo.Context, workCenterID openapi_types.UUID) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	status, err := workcenter.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeWorkCenterStatusCommand(toKernelUUID(workCenterID), status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeWorkCenterStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWorkCenter handles DELETE /api/v1/work-centers/{workCenterId}.
func (s *Server) DeleteWorkCenter(ctx echo.Context, workCenterID openapi_types.UUID) error {
	cmd, err := commands.NewDeleteWorkCenterCommand(toKernelUUID(workCenterID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteWorkCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkCenterQueue handles GET /api/v1/work-centers/{workCenterId}/queue.
func (s *Server) GetWorkCenterQueue(
	ctx echo.Context,
	workCenterID openapi_types.UUID,
	params servers.GetWorkCenterQueueParams,
) error {
	statuses, err := parseStatuses(params.Status, workorder.ParseOperationStatus)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListWorkCenterQueueQuery(toKernelUUID(workCenterID), statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.h.ListWorkCenterQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.QueueItem, len(items))
	for i, item := range items {
		response[i] = toQueueItem(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListProductionOrders handles GET /api/v1/production-orders.
func (s *Server) ListProductionOrders(ctx echo.Context, params servers.ListProductionOrdersParams) error {
	statuses, err := parseStatuses(params.Status, kernel.ParseOrderStatus)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListProductionOrdersQuery(statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.ListProductionOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ProductionOrderSummary, len(orders))
	for i, order := range orders {
		response[i] = toProductionOrderSummary(order)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProductionOrder handles POST /api/v1/production-orders.
func (s *Server) CreateProductionOrder(ctx echo.Context) error {
	var body servers.NewProductionOrder
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductionOrderCommand(id, toKernelUUID(body.DieId), deref(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}
	number, err := s.h.CreateProductionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedProductionOrder{Id: id.Bytes(), OrderNumber: number})
}

// GetProductionOrder handles GET /api/v1/production-orders/{productionOrderId}.
func (s *Server) GetProductionOrder(ctx echo.Context, productionOrderID openapi_types.UUID) error {
	query, err := queries.NewGetProductionOrderQuery(toKernelUUID(productionOrderID))
	if err != nil {
		return s.fail(ctx, err)
	}

	order, err := s.h.GetProductionOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductionOrder(order))
}

// ExpandProductionOrder handles POST /api/v1/production-orders/{productionOrderId}/expand.
// The committed order is read back with its work orders and operations.
func (s *Server) ExpandProductionOrder(ctx echo.Context, productionOrderID openapi_types.UUID) error {
	id := toKernelUUID(productionOrderID)
	cmd, err := commands.NewExpandProductionOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.ExpandProductionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductionOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	order, err := s.h.GetProductionOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductionOrder(order))
}

// ChangeProductionOrderStatus handles PATCH /api/v1/production-orders/{productionOrderId}/status.
func (s *Server) ChangeProductionOrderStatus(ctx echo.Context, productionOrderID openapi_types.UUID) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	status, err := kernel.ParseOrderStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeProductionOrderStatusCommand(toKernelUUID(productionOrderID), status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeProductionOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListWorkOrderOperations handles GET /api/v1/work-orders/{workOrderId}/operations.
func (s *Server) ListWorkOrderOperations(ctx echo.Context, workOrderID openapi_types.UUID) error {
	query, err := queries.NewListWorkOrderOperationsQuery(toKernelUUID(workOrderID))
	if err != nil {
		return s.fail(ctx, err)
	}

	operations, err := s.h.ListWorkOrderOperations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperations(operations))
}

// TransitionOperation handles PATCH /api/v1/operations/{operationId}/status.
func (s *Server) TransitionOperation(ctx echo.Context, operationID openapi_types.UUID) error {
	var body servers.OperationTransition
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	target, err := workorder.ParseOperationStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewTransitionOperationCommand(toKernelUUID(operationID), target, deref(body.OperatorName))
	if err != nil {
		return s.fail(ctx, err)
	}

	op, err := s.h.TransitionOperation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationState(op))
}

// UpdateOperationDetails handles PATCH /api/v1/operations/{operationId}.
func (s *Server) UpdateOperationDetails(ctx echo.Context, operationID openapi_types.UUID) error {
	var body servers.OperationDetails
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateOperationDetailsCommand(toKernelUUID(operationID), workorder.OperationDetails{
		OperatorName:             body.OperatorName,
		Notes:                    body.Notes,
		EstimatedDurationMinutes: body.EstimatedDurationMinutes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	op, err := s.h.UpdateOperationDetails.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperationState(op))
}

// ReceiveLot handles POST /api/v1/lots.
func (s *Server) ReceiveLot(ctx echo.Context) error {
	var body servers.NewLot
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	var receivedDate time.Time
	if body.ReceivedDate != nil {
		receivedDate = *body.ReceivedDate
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewReceiveLotCommand(
		id,
		toKernelUUID(body.StockItemId),
		body.CertificateNumber,
		deref(body.Supplier),
		deref(body.LengthMm),
		body.GrossWeightKg,
		receivedDate,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ReceiveLot.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// GetLot handles GET /api/v1/lots/{lotId}.
func (s *Server) GetLot(ctx echo.Context, lotID openapi_types.UUID) error {
	query, err := queries.NewGetLotQuery(toKernelUUID(lotID))
	if err != nil {
		return s.fail(ctx, err)
	}

	lot, err := s.h.GetLot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLot(lot))
}

// RecordStockMovement handles POST /api/v1/lots/{lotId}/movements. Retries carrying the
// same Idempotency-Key are answered by IdempotencyMiddleware.
func (s *Server) RecordStockMovement(
	ctx echo.Context,
	lotID openapi_types.UUID,
	_ servers.RecordStockMovementParams,
) error {
	var body servers.NewStockMovement
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(),
		toKernelUUID(lotID),
		toKernelUUID(body.WorkOrderId),
		body.QuantityKg,
		deref(body.Notes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	movement, err := s.h.RecordStockMovement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toStockMovement(movement))
}

// OverrideLotRemaining handles PUT /api/v1/lots/{lotId}/remaining.
func (s *Server) OverrideLotRemaining(ctx echo.Context, lotID openapi_types.UUID) error {
	var body servers.RemainingOverride
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewOverrideLotRemainingCommand(toKernelUUID(lotID), body.RemainingKg)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.OverrideLotRemaining.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListStockItems handles GET /api/v1/stock-items.
func (s *Server) ListStockItems(ctx echo.Context) error {
	query, err := queries.NewListStockItemsQuery()
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.h.ListStockItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	out := make([]servers.StockItem, len(items))
	for i, item := range items {
		out[i] = toStockItem(item)
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateStockItem handles POST /api/v1/stock-items.
func (s *Server) CreateStockItem(ctx echo.Context) error {
	var body servers.NewStockItem
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateStockItemCommand(id, body.Alloy, body.DiameterMm, deref(body.Description))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// CreateOperator handles POST /api/v1/operators.
func (s *Server) CreateOperator(ctx echo.Context) error {
	var body servers.NewOperator
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOperatorCommand(
		id, body.RfidCode, body.Name, deref(body.EmployeeNumber), toKernelUUIDs(body.WorkCenterIds),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateOperator.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateOperator handles PATCH /api/v1/operators/{operatorId}. Omitted fields are kept;
// workCenterIds replaces every assignment.
func (s *Server) UpdateOperator(ctx echo.Context, operatorID openapi_types.UUID) error {
	var body servers.OperatorChanges
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	changes := operator.Changes{
		RFIDCode:       body.RfidCode,
		Name:           body.Name,
		EmployeeNumber: body.EmployeeNumber,
		IsActive:       body.IsActive,
	}
	if body.WorkCenterIds != nil {
		ids := toKernelUUIDs(body.WorkCenterIds)
		changes.WorkCenterIDs = &ids
	}

	cmd, err := commands.NewUpdateOperatorCommand(toKernelUUID(operatorID), changes)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.UpdateOperator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperator(o))
}

// LoginOperator handles POST /api/v1/operators/login.
func (s *Server) LoginOperator(ctx echo.Context) error {
	var body servers.OperatorLogin
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	query, err := queries.NewLoginOperatorQuery(body.RfidCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	session, err := s.h.LoginOperator.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOperatorSession(session))
}
