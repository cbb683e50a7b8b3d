package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /dies)
	CreateDie(ctx echo.Context) error
	// (POST /dies/{dieId}/components)
	AddDieComponent(ctx echo.Context, dieId openapi_types.UUID) error
	// (PATCH /dies/{dieId}/status)
	ChangeDieStatus(ctx echo.Context, dieId openapi_types.UUID) error
	// (GET /die-types)
	ListDieTypes(ctx echo.Context, params ListDieTypesParams) error
	// (POST /die-types)
	CreateDieType(ctx echo.Context) error
	// (POST /die-types/{dieTypeId}/component-types)
	AddDieTypeComponentType(ctx echo.Context, dieTypeId openapi_types.UUID) error
	// (DELETE /die-types/{dieTypeId}/component-types/{componentTypeId})
	RemoveDieTypeComponentType(ctx echo.Context, dieTypeId openapi_types.UUID, componentTypeId openapi_types.UUID) error
	// (POST /component-types)
	CreateComponentType(ctx echo.Context) error
	// (POST /component-types/{componentTypeId}/bom-steps)
	AddBomStep(ctx echo.Context, componentTypeId openapi_types.UUID) error
	// (DELETE /component-types/{componentTypeId}/bom-steps/{sequenceNumber})
	RemoveBomStep(ctx echo.Context, componentTypeId openapi_types.UUID, sequenceNumber int) error
	// (POST /work-centers)
	CreateWorkCenter(ctx echo.Context) error
	// (DELETE /work-centers/{workCenterId})
	DeleteWorkCenter(ctx echo.Context, workCenterId openapi_types.UUID) error
	// (GET /work-centers/{workCenterId}/queue)
	GetWorkCenterQueue(ctx echo.Context, workCenterId openapi_types.UUID, params GetWorkCenterQueueParams) error
	// (PATCH /work-centers/{workCenterId}/status)
	ChangeWorkCenterStatus(ctx echo.Context, workCenterId openapi_types.UUID) error
	// (GET /production-orders)
	ListProductionOrders(ctx echo.Context, params ListProductionOrdersParams) error
	// (POST /production-orders)
	CreateProductionOrder(ctx echo.Context) error
	// (GET /production-orders/{productionOrderId})
	GetProductionOrder(ctx echo.Context, productionOrderId openapi_types.UUID) error
	// (POST /production-orders/{productionOrderId}/expand)
	ExpandProductionOrder(ctx echo.Context, productionOrderId openapi_types.UUID) error
	// (PATCH /production-orders/{productionOrderId}/status)
	ChangeProductionOrderStatus(ctx echo.Context, productionOrderId openapi_types.UUID) error
	// (GET /work-orders/{workOrderId}/operations)
	ListWorkOrderOperations(ctx echo.Context, workOrderId openapi_types.UUID) error
	// (PATCH /operations/{operationId})
	UpdateOperationDetails(ctx echo.Context, operationId openapi_types.UUID) error
	// (PATCH /operations/{operationId}/status)
	TransitionOperation(ctx echo.Context, operationId openapi_types.UUID) error
	// (POST /lots)
	ReceiveLot(ctx echo.Context) error
	// (GET /lots/{lotId})
	GetLot(ctx echo.Context, lotId openapi_types.UUID) error
	// (POST /lots/{lotId}/movements)
	RecordStockMovement(ctx echo.Context, lotId openapi_types.UUID, params RecordStockMovementParams) error
	// (PUT /lots/{lotId}/remaining)
	OverrideLotRemaining(ctx echo.Context, lotId openapi_types.UUID) error
	// (GET /stock-items)
	ListStockItems(ctx echo.Context) error
	// (POST /stock-items)
	CreateStockItem(ctx echo.Context) error
	// (POST /operators)
	CreateOperator(ctx echo.Context) error
	// (PATCH /operators/{operatorId})
	UpdateOperator(ctx echo.Context, operatorId openapi_types.UUID) error
	// (POST /operators/login)
	LoginOperator(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateDie converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDie(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDie(ctx)
	return err
}

// AddDieComponent converts echo context to params.
func (w *ServerInterfaceWrapper) AddDieComponent(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dieId" -------------
	var dieId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dieId", ctx.Param("dieId"), &dieId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dieId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddDieComponent(ctx, dieId)
	return err
}

// ChangeDieStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeDieStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dieId" -------------
	var dieId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dieId", ctx.Param("dieId"), &dieId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dieId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeDieStatus(ctx, dieId)
	return err
}

// ListDieTypes converts echo context to params.
func (w *ServerInterfaceWrapper) ListDieTypes(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListDieTypesParams
	// ------------- Optional query parameter "includeInactive" -------------

	err = runtime.BindQueryParameter("form", true, false, "includeInactive", ctx.QueryParams(), &params.IncludeInactive)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter includeInactive: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDieTypes(ctx, params)
	return err
}

// CreateDieType converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDieType(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDieType(ctx)
	return err
}

// AddDieTypeComponentType converts echo context to params.
func (w *ServerInterfaceWrapper) AddDieTypeComponentType(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dieTypeId" -------------
	var dieTypeId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dieTypeId", ctx.Param("dieTypeId"), &dieTypeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dieTypeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddDieTypeComponentType(ctx, dieTypeId)
	return err
}

// RemoveDieTypeComponentType converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveDieTypeComponentType(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dieTypeId" -------------
	var dieTypeId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "dieTypeId", ctx.Param("dieTypeId"), &dieTypeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dieTypeId: %s", err))
	}

	// ------------- Path parameter "componentTypeId" -------------
	var componentTypeId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "componentTypeId", ctx.Param("componentTypeId"), &componentTypeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter componentTypeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveDieTypeComponentType(ctx, dieTypeId, componentTypeId)
	return err
}

// CreateComponentType converts echo context to params.
func (w *ServerInterfaceWrapper) CreateComponentType(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateComponentType(ctx)
	return err
}

// AddBomStep converts echo context to params.
func (w *ServerInterfaceWrapper) AddBomStep(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "componentTypeId" -------------
	var componentTypeId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "componentTypeId", ctx.Param("componentTypeId"), &componentTypeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter componentTypeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddBomStep(ctx, componentTypeId)
	return err
}

// RemoveBomStep converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveBomStep(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "componentTypeId" -------------
	var componentTypeId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "componentTypeId", ctx.Param("componentTypeId"), &componentTypeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter componentTypeId: %s", err))
	}

	// ------------- Path parameter "sequenceNumber" -------------
	var sequenceNumber int

	err = runtime.BindStyledParameterWithOptions("simple", "sequenceNumber", ctx.Param("sequenceNumber"), &sequenceNumber, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sequenceNumber: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveBomStep(ctx, componentTypeId, sequenceNumber)
	return err
}

// CreateWorkCenter converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWorkCenter(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateWorkCenter(ctx)
	return err
}

// DeleteWorkCenter converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteWorkCenter(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "workCenterId" -------------
	var workCenterId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "workCenterId", ctx.Param("workCenterId"), &workCenterId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workCenterId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteWorkCenter(ctx, workCenterId)
	return err
}

// GetWorkCenterQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkCenterQueue(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "workCenterId" -------------
	var workCenterId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "workCenterId", ctx.Param("workCenterId"), &workCenterId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workCenterId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetWorkCenterQueueParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkCenterQueue(ctx, workCenterId, params)
	return err
}

// ChangeWorkCenterStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeWorkCenterStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "workCenterId" -------------
	var workCenterId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "workCenterId", ctx.Param("workCenterId"), &workCenterId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workCenterId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeWorkCenterStatus(ctx, workCenterId)
	return err
}

// ListProductionOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListProductionOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductionOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProductionOrders(ctx, params)
	return err
}

// CreateProductionOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProductionOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProductionOrder(ctx)
	return err
}

// GetProductionOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetProductionOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productionOrderId" -------------
	var productionOrderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productionOrderId", ctx.Param("productionOrderId"), &productionOrderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productionOrderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetProductionOrder(ctx, productionOrderId)
	return err
}

// ExpandProductionOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ExpandProductionOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productionOrderId" -------------
	var productionOrderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productionOrderId", ctx.Param("productionOrderId"), &productionOrderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productionOrderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ExpandProductionOrder(ctx, productionOrderId)
	return err
}

// ChangeProductionOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeProductionOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productionOrderId" -------------
	var productionOrderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productionOrderId", ctx.Param("productionOrderId"), &productionOrderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productionOrderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeProductionOrderStatus(ctx, productionOrderId)
	return err
}

// ListWorkOrderOperations converts echo context to params.
func (w *ServerInterfaceWrapper) ListWorkOrderOperations(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "workOrderId" -------------
	var workOrderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "workOrderId", ctx.Param("workOrderId"), &workOrderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workOrderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListWorkOrderOperations(ctx, workOrderId)
	return err
}

// UpdateOperationDetails converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOperationDetails(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "operationId" -------------
	var operationId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "operationId", ctx.Param("operationId"), &operationId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter operationId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOperationDetails(ctx, operationId)
	return err
}

// TransitionOperation converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionOperation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "operationId" -------------
	var operationId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "operationId", ctx.Param("operationId"), &operationId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter operationId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TransitionOperation(ctx, operationId)
	return err
}

// ReceiveLot converts echo context to params.
func (w *ServerInterfaceWrapper) ReceiveLot(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReceiveLot(ctx)
	return err
}

// GetLot converts echo context to params.
func (w *ServerInterfaceWrapper) GetLot(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "lotId" -------------
	var lotId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "lotId", ctx.Param("lotId"), &lotId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lotId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetLot(ctx, lotId)
	return err
}

// RecordStockMovement converts echo context to params.
func (w *ServerInterfaceWrapper) RecordStockMovement(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "lotId" -------------
	var lotId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "lotId", ctx.Param("lotId"), &lotId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lotId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params RecordStockMovementParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "Idempotency-Key" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var IdempotencyKey string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &IdempotencyKey, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &IdempotencyKey
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecordStockMovement(ctx, lotId, params)
	return err
}

// OverrideLotRemaining converts echo context to params.
func (w *ServerInterfaceWrapper) OverrideLotRemaining(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "lotId" -------------
	var lotId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "lotId", ctx.Param("lotId"), &lotId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lotId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.OverrideLotRemaining(ctx, lotId)
	return err
}

// ListStockItems converts echo context to params.
func (w *ServerInterfaceWrapper) ListStockItems(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListStockItems(ctx)
	return err
}

// CreateStockItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStockItem(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateStockItem(ctx)
	return err
}

// CreateOperator converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOperator(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOperator(ctx)
	return err
}

// UpdateOperator converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOperator(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "operatorId" -------------
	var operatorId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "operatorId", ctx.Param("operatorId"), &operatorId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter operatorId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOperator(ctx, operatorId)
	return err
}

// LoginOperator converts echo context to params.
func (w *ServerInterfaceWrapper) LoginOperator(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LoginOperator(ctx)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/dies", wrapper.CreateDie)
	router.POST(baseURL+"/dies/:dieId/components", wrapper.AddDieComponent)
	router.PATCH(baseURL+"/dies/:dieId/status", wrapper.ChangeDieStatus)
	router.GET(baseURL+"/die-types", wrapper.ListDieTypes)
	router.POST(baseURL+"/die-types", wrapper.CreateDieType)
	router.POST(baseURL+"/die-types/:dieTypeId/component-types", wrapper.AddDieTypeComponentType)
	router.DELETE(baseURL+"/die-types/:dieTypeId/component-types/:componentTypeId", wrapper.RemoveDieTypeComponentType)
	router.POST(baseURL+"/component-types", wrapper.CreateComponentType)
	router.POST(baseURL+"/component-types/:componentTypeId/bom-steps", wrapper.AddBomStep)
	router.DELETE(baseURL+"/component-types/:componentTypeId/bom-steps/:sequenceNumber", wrapper.RemoveBomStep)
	router.POST(baseURL+"/work-centers", wrapper.CreateWorkCenter)
	router.DELETE(baseURL+"/work-centers/:workCenterId", wrapper.DeleteWorkCenter)
	router.GET(baseURL+"/work-centers/:workCenterId/queue", wrapper.GetWorkCenterQueue)
	router.PATCH(baseURL+"/work-centers/:workCenterId/status", wrapper.ChangeWorkCenterStatus)
	router.GET(baseURL+"/production-orders", wrapper.ListProductionOrders)
	router.POST(baseURL+"/production-orders", wrapper.CreateProductionOrder)
	router.GET(baseURL+"/production-orders/:productionOrderId", wrapper.GetProductionOrder)
	router.POST(baseURL+"/production-orders/:productionOrderId/expand", wrapper.ExpandProductionOrder)
	router.PATCH(baseURL+"/production-orders/:productionOrderId/status", wrapper.ChangeProductionOrderStatus)
	router.GET(baseURL+"/work-orders/:workOrderId/operations", wrapper.ListWorkOrderOperations)
	router.PATCH(baseURL+"/operations/:operationId", wrapper.UpdateOperationDetails)
	router.PATCH(baseURL+"/operations/:operationId/status", wrapper.TransitionOperation)
	router.POST(baseURL+"/lots", wrapper.ReceiveLot)
	router.GET(baseURL+"/lots/:lotId", wrapper.GetLot)
	router.POST(baseURL+"/lots/:lotId/movements", wrapper.RecordStockMovement)
	router.PUT(baseURL+"/lots/:lotId/remaining", wrapper.OverrideLotRemaining)
	router.GET(baseURL+"/stock-items", wrapper.ListStockItems)
	router.POST(baseURL+"/stock-items", wrapper.CreateStockItem)
	router.POST(baseURL+"/operators", wrapper.CreateOperator)
	router.PATCH(baseURL+"/operators/:operatorId", wrapper.UpdateOperator)
	router.POST(baseURL+"/operators/login", wrapper.LoginOperator)
}
