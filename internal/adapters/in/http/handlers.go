package http

import (
	"context"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/workorder"
)

// CommandHandler is satisfied by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is satisfied by command and query handlers returning a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases the HTTP surface exposes.
type Handlers struct {
	CreateDie       CommandHandler[commands.CreateDieCommand]
	AddDieComponent CommandHandler[commands.AddDieComponentCommand]
	ChangeDieStatus CommandHandler[commands.ChangeDieStatusCommand]

	CreateDieType          CommandHandler[commands.CreateDieTypeCommand]
	ChangeDieTypeComponent CommandHandler[commands.ChangeDieTypeComponentCommand]
	ListDieTypes           ResultHandler[queries.ListDieTypesQuery, []queries.DieTypeView]

	CreateComponentType CommandHandler[commands.CreateComponentTypeCommand]
	AddBOMStep          CommandHandler[commands.AddBOMStepCommand]
	RemoveBOMStep       CommandHandler[commands.RemoveBOMStepCommand]

	CreateWorkCenter       CommandHandler[commands.CreateWorkCenterCommand]
	ChangeWorkCenterStatus CommandHandler[commands.ChangeWorkCenterStatusCommand]
	DeleteWorkCenter       CommandHandler[commands.DeleteWorkCenterCommand]

	CreateOperator CommandHandler[commands.CreateOperatorCommand]
	UpdateOperator ResultHandler[commands.UpdateOperatorCommand, *operator.Operator]
	LoginOperator  ResultHandler[queries.LoginOperatorQuery, *queries.OperatorSession]

	CreateProductionOrder       ResultHandler[commands.CreateProductionOrderCommand, string]
	ExpandProductionOrder       ResultHandler[commands.ExpandProductionOrderCommand, int]
	ChangeProductionOrderStatus CommandHandler[commands.ChangeProductionOrderStatusCommand]

	TransitionOperation     ResultHandler[commands.TransitionOperationCommand, *workorder.Operation]
	UpdateOperationDetails  ResultHandler[commands.UpdateOperationDetailsCommand, *workorder.Operation]
	ReceiveLot              CommandHandler[commands.ReceiveLotCommand]
	RecordStockMovement     ResultHandler[commands.RecordStockMovementCommand, *inventory.StockMovement]
	OverrideLotRemaining    CommandHandler[commands.OverrideLotRemainingCommand]
	GetProductionOrder      ResultHandler[queries.GetProductionOrderQuery, *queries.GetProductionOrderQueryResponse]
	ListProductionOrders    ResultHandler[queries.ListProductionOrdersQuery, []queries.ListProductionOrdersQueryResponse]
	ListWorkOrderOperations ResultHandler[queries.ListWorkOrderOperationsQuery, []queries.OperationView]
	ListWorkCenterQueue     ResultHandler[queries.ListWorkCenterQueueQuery, []queries.WorkCenterQueueItem]
	GetLot                  ResultHandler[queries.GetLotQuery, *queries.GetLotQueryResponse]
	CreateStockItem         CommandHandler[commands.CreateStockItemCommand]
	ListStockItems          ResultHandler[queries.ListStockItemsQuery, []queries.StockItemView]
}
