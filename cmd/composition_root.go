package cmd

import (
	"log/slog"

	httpin "dietrack/internal/adapters/in/http"
	"dietrack/internal/adapters/out/postgres"
	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/ports"
	"dietrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) dieUoWFactory() commands.DieUoWFactory {
	return FuncDieUoWFactory(func() commands.DieUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dieTypeUoWFactory() commands.DieTypeUoWFactory {
	return FuncDieTypeUoWFactory(func() commands.DieTypeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) operatorUoWFactory() commands.OperatorUoWFactory {
	return FuncOperatorUoWFactory(func() commands.OperatorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) componentTypeUoWFactory() commands.ComponentTypeUoWFactory {
	return FuncComponentTypeUoWFactory(func() commands.ComponentTypeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workCenterUoWFactory() commands.WorkCenterUoWFactory {
	return FuncWorkCenterUoWFactory(func() commands.WorkCenterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productionOrderUoWFactory() commands.ProductionOrderUoWFactory {
	return FuncProductionOrderUoWFactory(func() commands.ProductionOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) operationUoWFactory() commands.OperationUoWFactory {
	return FuncOperationUoWFactory(func() commands.OperationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDieCommandHandler() commands.CreateDieCommandHandler {
	return commands.NewCreateDieCommandHandler(c.dieUoWFactory())
}

func (c *CompositionRoot) CreateAddDieComponentCommandHandler() commands.AddDieComponentCommandHandler {
	return commands.NewAddDieComponentCommandHandler(c.dieUoWFactory())
}

func (c *CompositionRoot) CreateChangeDieStatusCommandHandler() commands.ChangeDieStatusCommandHandler {
	return commands.NewChangeDieStatusCommandHandler(c.dieUoWFactory())
}

func (c *CompositionRoot) CreateCreateDieTypeCommandHandler() commands.CreateDieTypeCommandHandler {
	return commands.NewCreateDieTypeCommandHandler(c.dieTypeUoWFactory())
}

func (c *CompositionRoot) CreateChangeDieTypeComponentCommandHandler() commands.ChangeDieTypeComponentCommandHandler {
	return commands.NewChangeDieTypeComponentCommandHandler(c.dieTypeUoWFactory())
}

func (c *CompositionRoot) CreateCreateComponentTypeCommandHandler() commands.CreateComponentTypeCommandHandler {
	return commands.NewCreateComponentTypeCommandHandler(c.componentTypeUoWFactory())
}

func (c *CompositionRoot) CreateAddBOMStepCommandHandler() commands.AddBOMStepCommandHandler {
	return commands.NewAddBOMStepCommandHandler(c.componentTypeUoWFactory())
}

func (c *CompositionRoot) CreateRemoveBOMStepCommandHandler() commands.RemoveBOMStepCommandHandler {
	return commands.NewRemoveBOMStepCommandHandler(c.componentTypeUoWFactory())
}

func (c *CompositionRoot) CreateCreateWorkCenterCommandHandler() commands.CreateWorkCenterCommandHandler {
	return commands.NewCreateWorkCenterCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateChangeWorkCenterStatusCommandHandler() commands.ChangeWorkCenterStatusCommandHandler {
	return commands.NewChangeWorkCenterStatusCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateDeleteWorkCenterCommandHandler() commands.DeleteWorkCenterCommandHandler {
	return commands.NewDeleteWorkCenterCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateCreateOperatorCommandHandler() commands.CreateOperatorCommandHandler {
	return commands.NewCreateOperatorCommandHandler(c.operatorUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOperatorCommandHandler() commands.UpdateOperatorCommandHandler {
	return commands.NewUpdateOperatorCommandHandler(c.operatorUoWFactory())
}

func (c *CompositionRoot) CreateReleaseIdleWorkCentersCommandHandler() commands.ReleaseIdleWorkCentersCommandHandler {
	return commands.NewReleaseIdleWorkCentersCommandHandler(c.workCenterUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductionOrderCommandHandler() commands.CreateProductionOrderCommandHandler {
	return commands.NewCreateProductionOrderCommandHandler(c.productionOrderUoWFactory())
}

func (c *CompositionRoot) CreateExpandProductionOrderCommandHandler() commands.ExpandProductionOrderCommandHandler {
	return commands.NewExpandProductionOrderCommandHandler(c.productionOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeProductionOrderStatusCommandHandler() commands.ChangeProductionOrderStatusCommandHandler {
	return commands.NewChangeProductionOrderStatusCommandHandler(c.productionOrderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOperationCommandHandler() commands.TransitionOperationCommandHandler {
	return commands.NewTransitionOperationCommandHandler(c.operationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOperationDetailsCommandHandler() commands.UpdateOperationDetailsCommandHandler {
	return commands.NewUpdateOperationDetailsCommandHandler(c.operationUoWFactory())
}

func (c *CompositionRoot) CreateCreateStockItemCommandHandler() commands.CreateStockItemCommandHandler {
	return commands.NewCreateStockItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateReceiveLotCommandHandler() commands.ReceiveLotCommandHandler {
	return commands.NewReceiveLotCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRecordStockMovementCommandHandler() commands.RecordStockMovementCommandHandler {
	return commands.NewRecordStockMovementCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateOverrideLotRemainingCommandHandler() commands.OverrideLotRemainingCommandHandler {
	return commands.NewOverrideLotRemainingCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetProductionOrderQueryHandler() queries.GetProductionOrderQueryHandler {
	return queries.NewGetProductionOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductionOrdersQueryHandler() queries.ListProductionOrdersQueryHandler {
	return queries.NewListProductionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkOrderOperationsQueryHandler() queries.ListWorkOrderOperationsQueryHandler {
	return queries.NewListWorkOrderOperationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkCenterQueueQueryHandler() queries.ListWorkCenterQueueQueryHandler {
	return queries.NewListWorkCenterQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLotQueryHandler() queries.GetLotQueryHandler {
	return queries.NewGetLotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDieTypesQueryHandler() queries.ListDieTypesQueryHandler {
	return queries.NewListDieTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStockItemsQueryHandler() queries.ListStockItemsQueryHandler {
	return queries.NewListStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLoginOperatorQueryHandler() queries.LoginOperatorQueryHandler {
	return queries.NewLoginOperatorQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateDie:       c.CreateCreateDieCommandHandler(),
		AddDieComponent: c.CreateAddDieComponentCommandHandler(),
		ChangeDieStatus: c.CreateChangeDieStatusCommandHandler(),

		CreateDieType:          c.CreateCreateDieTypeCommandHandler(),
		ChangeDieTypeComponent: c.CreateChangeDieTypeComponentCommandHandler(),
		ListDieTypes:           c.CreateListDieTypesQueryHandler(),

		CreateComponentType: c.CreateCreateComponentTypeCommandHandler(),
		AddBOMStep:          c.CreateAddBOMStepCommandHandler(),
		RemoveBOMStep:       c.CreateRemoveBOMStepCommandHandler(),

		CreateWorkCenter:       c.CreateCreateWorkCenterCommandHandler(),
		ChangeWorkCenterStatus: c.CreateChangeWorkCenterStatusCommandHandler(),
		DeleteWorkCenter:       c.CreateDeleteWorkCenterCommandHandler(),

		CreateOperator: c.CreateCreateOperatorCommandHandler(),
		UpdateOperator: c.CreateUpdateOperatorCommandHandler(),
		LoginOperator:  c.CreateLoginOperatorQueryHandler(),

		CreateProductionOrder:       c.CreateCreateProductionOrderCommandHandler(),
		ExpandProductionOrder:       c.CreateExpandProductionOrderCommandHandler(),
		ChangeProductionOrderStatus: c.CreateChangeProductionOrderStatusCommandHandler(),

		TransitionOperation:     c.CreateTransitionOperationCommandHandler(),
		UpdateOperationDetails:  c.CreateUpdateOperationDetailsCommandHandler(),
		ReceiveLot:              c.CreateReceiveLotCommandHandler(),
		RecordStockMovement:     c.CreateRecordStockMovementCommandHandler(),
		OverrideLotRemaining:    c.CreateOverrideLotRemainingCommandHandler(),
		GetProductionOrder:      c.CreateGetProductionOrderQueryHandler(),
		ListProductionOrders:    c.CreateListProductionOrdersQueryHandler(),
		ListWorkOrderOperations: c.CreateListWorkOrderOperationsQueryHandler(),
		ListWorkCenterQueue:     c.CreateListWorkCenterQueueQueryHandler(),
		GetLot:                  c.CreateGetLotQueryHandler(),
		CreateStockItem:         c.CreateCreateStockItemCommandHandler(),
		ListStockItems:          c.CreateListStockItemsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		c.CreateReleaseIdleWorkCentersCommandHandler(),
		jobs.Schedules{
			OutboxRelay:            c.config.OutboxRelaySchedule,
			ReleaseIdleWorkCenters: c.config.ReleaseIdleWorkCentersSchedule,
		},
		c.config.OutboxBatchSize,
		c.logger,
	)
}

type FuncDieUoWFactory func() commands.DieUoW

func (f FuncDieUoWFactory) Create() commands.DieUoW {
	return f()
}

type FuncDieTypeUoWFactory func() commands.DieTypeUoW

func (f FuncDieTypeUoWFactory) Create() commands.DieTypeUoW {
	return f()
}

type FuncOperatorUoWFactory func() commands.OperatorUoW

func (f FuncOperatorUoWFactory) Create() commands.OperatorUoW {
	return f()
}

type FuncComponentTypeUoWFactory func() commands.ComponentTypeUoW

func (f FuncComponentTypeUoWFactory) Create() commands.ComponentTypeUoW {
	return f()
}

type FuncWorkCenterUoWFactory func() commands.WorkCenterUoW

func (f FuncWorkCenterUoWFactory) Create() commands.WorkCenterUoW {
	return f()
}

type FuncProductionOrderUoWFactory func() commands.ProductionOrderUoW

func (f FuncProductionOrderUoWFactory) Create() commands.ProductionOrderUoW {
	return f()
}

type FuncOperationUoWFactory func() commands.OperationUoW

func (f FuncOperationUoWFactory) Create() commands.OperationUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
