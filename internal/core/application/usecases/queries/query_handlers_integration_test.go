package queries_test

import (
	"context"
	"testing"
	"time"

	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/lotrepo"
	"dietrack/internal/adapters/out/postgres/operatorrepo"
	"dietrack/internal/adapters/out/postgres/pgtest"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/adapters/out/postgres/workorderrepo"
	"dietrack/internal/core/application/usecases/queries"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/core/domain/services"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type tracker struct{}

func (tracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite seeds one expanded production order per test:
//   - die 1100 with two components, BOMs of 3 and 2 steps on one work center
//   - operation 1 of the first work order InProgress
//   - 20.5 kg drawn from a 400 kg lot for the first work order
//   - a second, cancelled production order without work orders
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB

	plant      *pgtest.Plant
	workOrders []*workorder.WorkOrder
	lot        *inventory.Lot
	cancelled  *productionorder.ProductionOrder
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))

	plant, err := pgtest.SeedPlant(ctx, suite.db, "1100", 3, 2)
	suite.Require().NoError(err)
	suite.plant = plant

	now := time.Now()
	workOrders, err := services.NewWorkOrderExpander().Expand(plant.Order, plant.Die, plant.ComponentTypes, now)
	suite.Require().NoError(err)

	woRepo := workorderrepo.NewGormWorkOrderRepository(suite.db, tracker{})
	poRepo := productionorderrepo.NewGormProductionOrderRepository(suite.db, tracker{})
	for _, wo := range workOrders {
		suite.Require().NoError(woRepo.Add(ctx, wo))
	}
	suite.Require().NoError(dierepo.NewGormDieRepository(suite.db, tracker{}).Update(ctx, plant.Die))
	suite.Require().NoError(poRepo.Update(ctx, plant.Order))

	first := workOrders[0]
	_, err = first.TransitionOperation(first.Operations()[0].ID(), workorder.OperationInProgress, "Ana", now)
	suite.Require().NoError(err)

	lot, err := inventory.NewLot(kernel.NewUUID(), plant.StockItem.ID(), "H-4471", "Böhler", 3000, 400, now)
	suite.Require().NoError(err)
	lotRepo := lotrepo.NewGormLotRepository(suite.db, tracker{})
	suite.Require().NoError(lotRepo.Add(ctx, lot))

	movement, err := lot.Debit(kernel.NewUUID(), first.ID(), 20.5, "first cut", now)
	suite.Require().NoError(err)
	suite.Require().NoError(first.RecordConsumption(20.5))
	suite.Require().NoError(first.BindLot(lot.ID()))
	suite.Require().NoError(lotRepo.AddMovement(ctx, movement))
	suite.Require().NoError(lotRepo.Update(ctx, lot))
	suite.Require().NoError(woRepo.Update(ctx, first))

	cancelled, err := productionorder.NewProductionOrder(kernel.NewUUID(), "UE-1100-002", plant.Die.ID(), "", now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(cancelled.Cancel(now.Add(time.Minute)))
	suite.Require().NoError(poRepo.Add(ctx, cancelled))

	suite.workOrders = workOrders
	suite.lot = lot
	suite.cancelled = cancelled
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProductionOrder_ReturnsWorkOrdersAndOperations() {
	query, err := queries.NewGetProductionOrderQuery(suite.plant.Order.ID())
	suite.Require().NoError(err)

	order, err := queries.NewGetProductionOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("UE-1100-001", order.OrderNumber)
	suite.Equal("1100", order.DieNumber)
	suite.Equal(kernel.OrderInProgress, order.Status)
	suite.NotNil(order.StartedAt)
	suite.Nil(order.CompletedAt)

	suite.Require().Len(order.WorkOrders, 2)
	first, second := order.WorkOrders[0], order.WorkOrders[1]
	suite.Equal("IE-1100-001-01", first.OrderNumber)
	suite.Equal(1, first.ComponentPosition)
	suite.Equal("1100-TA", first.ComponentTypeCode)
	suite.Equal(kernel.OrderInProgress, first.Status)
	suite.InDelta(20.5, first.ActualConsumptionKg, 1e-9)
	suite.Require().NotNil(first.LotID)
	suite.Equal(suite.lot.ID(), *first.LotID)
	suite.Require().Len(first.Operations, 3)
	suite.Equal(workorder.OperationInProgress, first.Operations[0].Status)
	suite.Equal("Ana", first.Operations[0].OperatorName)
	suite.Equal(suite.plant.WorkCenter.Name(), first.Operations[0].WorkCenterName)
	suite.Equal(workorder.OperationWaiting, first.Operations[1].Status)

	suite.Equal("IE-1100-001-02", second.OrderNumber)
	suite.Equal(kernel.OrderWaiting, second.Status)
	suite.Nil(second.LotID)
	suite.Require().Len(second.Operations, 2)
	for i, op := range second.Operations {
		suite.Equal(i+1, op.SequenceNumber)
		suite.Equal(second.ID, op.WorkOrderID)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProductionOrder_WithoutWorkOrders() {
	query, err := queries.NewGetProductionOrderQuery(suite.cancelled.ID())
	suite.Require().NoError(err)

	order, err := queries.NewGetProductionOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(kernel.OrderCancelled, order.Status)
	suite.NotNil(order.CompletedAt)
	suite.NotNil(order.WorkOrders)
	suite.Empty(order.WorkOrders)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProductionOrder_NotFound() {
	query, err := queries.NewGetProductionOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetProductionOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListProductionOrders() {
	handler := queries.NewListProductionOrdersQueryHandler(suite.db)

	suite.Run("all statuses newest first", func() {
		query, err := queries.NewListProductionOrdersQuery()
		suite.Require().NoError(err)

		orders, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(orders, 2)
		suite.Equal("UE-1100-002", orders[0].OrderNumber)
		suite.Zero(orders[0].WorkOrderCount)
		suite.Equal("UE-1100-001", orders[1].OrderNumber)
		suite.Equal(2, orders[1].WorkOrderCount)
		suite.Equal("1100", orders[1].DieNumber)
	})

	suite.Run("filtered by status", func() {
		query, err := queries.NewListProductionOrdersQuery(kernel.OrderWaiting, kernel.OrderInProgress)
		suite.Require().NoError(err)

		orders, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(orders, 1)
		suite.Equal(suite.plant.Order.ID(), orders[0].ID)
		suite.Equal(kernel.OrderInProgress, orders[0].Status)
	})

	suite.Run("no match", func() {
		query, err := queries.NewListProductionOrdersQuery(kernel.OrderCompleted)
		suite.Require().NoError(err)

		orders, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.NotNil(orders)
		suite.Empty(orders)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestListWorkOrderOperations() {
	query, err := queries.NewListWorkOrderOperationsQuery(suite.workOrders[1].ID())
	suite.Require().NoError(err)

	ops, err := queries.NewListWorkOrderOperationsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(ops, 2)
	suite.Equal(1, ops[0].SequenceNumber)
	suite.Equal(10, ops[0].EstimatedDurationMinutes)
	suite.Equal(2, ops[1].SequenceNumber)
	suite.Equal(20, ops[1].EstimatedDurationMinutes)
	suite.Nil(ops[0].StartedAt)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListWorkOrderOperations_UnknownWorkOrder() {
	query, err := queries.NewListWorkOrderOperationsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewListWorkOrderOperationsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListWorkCenterQueue() {
	handler := queries.NewListWorkCenterQueueQueryHandler(suite.db)
	wcID := suite.plant.WorkCenter.ID()

	suite.Run("every operation in order", func() {
		query, err := queries.NewListWorkCenterQueueQuery(wcID)
		suite.Require().NoError(err)

		queue, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(queue, 5)
		suite.Equal("IE-1100-001-01", queue[0].WorkOrderNumber)
		suite.Equal("UE-1100-001", queue[0].ProductionOrderNumber)
		suite.Equal(1, queue[0].SequenceNumber)
		suite.Equal("IE-1100-001-02", queue[4].WorkOrderNumber)
		suite.Equal(2, queue[4].SequenceNumber)
	})

	suite.Run("only running work", func() {
		query, err := queries.NewListWorkCenterQueueQuery(wcID, workorder.OperationInProgress, workorder.OperationPaused)
		suite.Require().NoError(err)

		queue, err := handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(queue, 1)
		suite.Equal(suite.workOrders[0].ID(), queue[0].WorkOrderID)
		suite.Equal("Ana", queue[0].OperatorName)
		suite.NotNil(queue[0].StartedAt)
	})

	suite.Run("unknown work center", func() {
		query, err := queries.NewListWorkCenterQueueQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetLot_ReturnsRemainingAndMovements() {
	query, err := queries.NewGetLotQuery(suite.lot.ID())
	suite.Require().NoError(err)

	lot, err := queries.NewGetLotQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.plant.StockItem.ID(), lot.StockItemID)
	suite.Equal("H13/1100", lot.Alloy)
	suite.Equal(250, lot.DiameterMm)
	suite.Equal("H-4471", lot.CertificateNumber)
	suite.Equal("Böhler", lot.Supplier)
	suite.InDelta(400, lot.GrossWeightKg, 1e-9)
	suite.InDelta(379.5, lot.RemainingKg, 1e-9)
	suite.Require().Len(lot.Movements, 1)
	suite.Equal("IE-1100-001-01", lot.Movements[0].WorkOrderNumber)
	suite.InDelta(20.5, lot.Movements[0].QuantityKg, 1e-9)
	suite.Equal("first cut", lot.Movements[0].Notes)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetLot_NotFound() {
	query, err := queries.NewGetLotQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetLotQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListDieTypes() {
	ctx := context.Background()
	var listed []kernel.UUID
	for id := range suite.plant.ComponentTypes {
		listed = append(listed, id)
	}

	retired, err := dietype.NewDieType(kernel.NewUUID(), "ZZ-OLD", "Retired", "")
	suite.Require().NoError(err)
	for _, id := range listed {
		suite.Require().NoError(retired.AddComponentType(id))
	}
	retired.Deactivate()
	suite.Require().NoError(dietyperepo.NewGormDieTypeRepository(suite.db, tracker{}).Add(ctx, retired))

	handler := queries.NewListDieTypesQueryHandler(suite.db)

	suite.Run("active only", func() {
		query, err := queries.NewListDieTypesQuery(false)
		suite.Require().NoError(err)

		dieTypes, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(dieTypes, 1)
		suite.Equal("DT-1100", dieTypes[0].Code)
		suite.True(dieTypes[0].IsActive)
		suite.NotNil(dieTypes[0].ComponentTypes)
		suite.Empty(dieTypes[0].ComponentTypes)
	})

	suite.Run("with retired types and their component types in listing order", func() {
		query, err := queries.NewListDieTypesQuery(true)
		suite.Require().NoError(err)

		dieTypes, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Require().Len(dieTypes, 2)
		suite.Equal("ZZ-OLD", dieTypes[1].Code)
		suite.False(dieTypes[1].IsActive)
		suite.Require().Len(dieTypes[1].ComponentTypes, len(listed))
		for i, ref := range dieTypes[1].ComponentTypes {
			suite.Equal(listed[i], ref.ID)
			suite.Equal(suite.plant.ComponentTypes[ref.ID].Code(), ref.Code)
		}
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestListStockItems() {
	ctx := context.Background()
	empty, err := pgtest.SeedStockItem(ctx, suite.db, "1.2343", 180)
	suite.Require().NoError(err)

	query, err := queries.NewListStockItemsQuery()
	suite.Require().NoError(err)

	items, err := queries.NewListStockItemsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(empty.ID(), items[0].ID)
	suite.Zero(items[0].LotCount)
	suite.Zero(items[0].RemainingKg)

	suite.Equal(suite.plant.StockItem.ID(), items[1].ID)
	suite.Equal(1, items[1].LotCount)
	suite.Equal(1, items[1].OpenLotCount)
	suite.InDelta(379.5, items[1].RemainingKg, 1e-9)
}

func (suite *QueryHandlersIntegrationTestSuite) TestLoginOperator() {
	ctx := context.Background()
	repo := operatorrepo.NewGormOperatorRepository(suite.db, tracker{})

	ana, err := operator.NewOperator(kernel.NewUUID(), "04A1B2C3", "Ana", "E-17", []kernel.UUID{suite.plant.WorkCenter.ID()})
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, ana))

	inactive := false
	gone, err := operator.NewOperator(kernel.NewUUID(), "04FFFFFF", "Ivo", "", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(gone.Apply(operator.Changes{IsActive: &inactive}))
	suite.Require().NoError(repo.Add(ctx, gone))

	handler := queries.NewLoginOperatorQueryHandler(suite.db)

	suite.Run("active badge", func() {
		query, err := queries.NewLoginOperatorQuery("04A1B2C3")
		suite.Require().NoError(err)

		session, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal(ana.ID(), session.OperatorID)
		suite.Equal("Ana", session.Name)
		suite.Equal("E-17", session.EmployeeNumber)
		suite.Require().Len(session.WorkCenters, 1)
		suite.Equal(suite.plant.WorkCenter.ID(), session.WorkCenters[0].ID)
		suite.Equal(suite.plant.WorkCenter.Name(), session.WorkCenters[0].Name)
	})

	suite.Run("inactive badge", func() {
		query, err := queries.NewLoginOperatorQuery("04FFFFFF")
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.Require().ErrorIs(err, operator.ErrOperatorInactive)
	})

	suite.Run("unknown badge", func() {
		query, err := queries.NewLoginOperatorQuery("00000000")
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueryHandlersIntegrationTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	query, err := queries.NewListProductionOrdersQuery()
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewListProductionOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
