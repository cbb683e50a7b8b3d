package postgres_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dietrack/internal/adapters/out/postgres"
	"dietrack/internal/adapters/out/postgres/pgtest"
	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// blockedFor is how long a handler waiting on a row lock must stay blocked before the
// holder commits.
const blockedFor = 300 * time.Millisecond

type operationUoWFactory struct{ f *postgres.GormUnitOfWorkFactory }

func (o operationUoWFactory) Create() commands.OperationUoW { return o.f.Create() }

type inventoryUoWFactory struct{ f *postgres.GormUnitOfWorkFactory }

func (i inventoryUoWFactory) Create() commands.InventoryUoW { return i.f.Create() }

type productionOrderUoWFactory struct{ f *postgres.GormUnitOfWorkFactory }

func (p productionOrderUoWFactory) Create() commands.ProductionOrderUoW { return p.f.Create() }

type transitionResult struct {
	op  *workorder.Operation
	err error
}

// expand seeds a plant and expands its production order through the command handler. Work
// orders are returned in order number order.
func (suite *UnitOfWorkIntegrationTestSuite) expand(dieNumber string, bomSizes ...int) (*pgtest.Plant, []*workorder.WorkOrder) {
	ctx := context.Background()
	plant, err := pgtest.SeedPlant(ctx, suite.db, dieNumber, bomSizes...)
	suite.Require().NoError(err)

	cmd, err := commands.NewExpandProductionOrderCommand(plant.Order.ID())
	suite.Require().NoError(err)
	_, err = commands.NewExpandProductionOrderCommandHandler(productionOrderUoWFactory{suite.factory}).Handle(ctx, cmd)
	suite.Require().NoError(err)

	var ids []uuid.UUID
	suite.Require().NoError(suite.db.Table("work_orders").Order("order_number").Pluck("id", &ids).Error)
	workOrders := make([]*workorder.WorkOrder, 0, len(ids))
	for _, raw := range ids {
		id, pErr := kernel.UUIDFromBytes(raw[:])
		suite.Require().NoError(pErr)
		wo, gErr := suite.factory.Create().WorkOrderRepository().Get(ctx, id)
		suite.Require().NoError(gErr)
		workOrders = append(workOrders, wo)
	}
	return plant, workOrders
}

func (suite *UnitOfWorkIntegrationTestSuite) transition(operationID kernel.UUID, target workorder.OperationStatus) (*workorder.Operation, error) {
	cmd, err := commands.NewTransitionOperationCommand(operationID, target, "Ana")
	suite.Require().NoError(err)
	return commands.NewTransitionOperationCommandHandler(operationUoWFactory{suite.factory}).Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSiblingTransitionWaitsForWorkOrderLock() {
	ctx := context.Background()
	_, workOrders := suite.expand("2100", 2)
	first, second := workOrders[0].Operations()[0], workOrders[0].Operations()[1]

	_, err := suite.transition(first.ID(), workorder.OperationInProgress)
	suite.Require().NoError(err)

	// complete operation 1 inside an open transaction that holds the work order lock
	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()

	wo, err := holder.WorkOrderRepository().GetByOperationForUpdate(ctx, first.ID())
	suite.Require().NoError(err)
	transition, err := wo.TransitionOperation(first.ID(), workorder.OperationCompleted, "Ana", time.Now())
	suite.Require().NoError(err)
	suite.Require().Equal(workorder.WorkCenterRelease, transition.Effect)
	wc, err := holder.WorkCenterRepository().GetForUpdate(ctx, transition.WorkCenterID)
	suite.Require().NoError(err)
	wc.Release()
	suite.Require().NoError(holder.WorkCenterRepository().Update(ctx, wc))
	suite.Require().NoError(holder.WorkOrderRepository().Update(ctx, wo))

	done := make(chan transitionResult, 1)
	go func() {
		op, tErr := suite.transition(second.ID(), workorder.OperationInProgress)
		done <- transitionResult{op: op, err: tErr}
	}()

	select {
	case res := <-done:
		suite.FailNow("sibling transition did not wait for the work order lock", "result: %+v", res)
	case <-time.After(blockedFor):
	}

	suite.Require().NoError(holder.Commit(ctx))

	select {
	case res := <-done:
		suite.Require().NoError(res.err)
		suite.Equal(workorder.OperationInProgress, res.op.Status())
	case <-time.After(10 * time.Second):
		suite.FailNow("sibling transition never finished")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentSiblingStartsAdmitOnlyTheFirstOperation() {
	_, workOrders := suite.expand("2200", 3)
	ops := workOrders[0].Operations()

	start := make(chan struct{})
	results := make([]error, len(ops))
	var wg sync.WaitGroup
	for i, op := range ops {
		wg.Add(1)
		go func(i int, id kernel.UUID) {
			defer wg.Done()
			<-start
			_, results[i] = suite.transition(id, workorder.OperationInProgress)
		}(i, op.ID())
	}
	close(start)
	wg.Wait()

	suite.Require().NoError(results[0])
	for _, err := range results[1:] {
		suite.Require().ErrorIs(err, workorder.ErrSequenceDependencyViolation)
	}

	reloaded, err := suite.factory.Create().WorkOrderRepository().Get(context.Background(), workOrders[0].ID())
	suite.Require().NoError(err)
	statuses := make([]workorder.OperationStatus, 0, len(ops))
	for _, op := range reloaded.Operations() {
		statuses = append(statuses, op.Status())
	}
	suite.Equal([]workorder.OperationStatus{
		workorder.OperationInProgress, workorder.OperationWaiting, workorder.OperationWaiting,
	}, statuses)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentDebitsNeverOverdrawALot() {
	ctx := context.Background()
	plant, workOrders := suite.expand("2300", 1, 1)
	suite.Require().Len(workOrders, 2)

	lot, err := inventory.NewLot(kernel.NewUUID(), plant.StockItem.ID(), "H-9000", "Böhler", 3000, 100, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().LotRepository().Add(ctx, lot))

	handler := commands.NewRecordStockMovementCommandHandler(inventoryUoWFactory{suite.factory})
	start := make(chan struct{})
	results := make([]error, len(workOrders))
	var wg sync.WaitGroup
	for i, wo := range workOrders {
		cmd, cErr := commands.NewRecordStockMovementCommand(kernel.NewUUID(), lot.ID(), wo.ID(), 60, "")
		suite.Require().NoError(cErr)
		wg.Add(1)
		go func(i int, cmd commands.RecordStockMovementCommand) {
			defer wg.Done()
			<-start
			_, results[i] = handler.Handle(ctx, cmd)
		}(i, cmd)
	}
	close(start)
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, inventory.ErrInsufficientStock):
			rejected++
		default:
			suite.Failf("unexpected debit error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	reloaded, err := suite.factory.Create().LotRepository().Get(ctx, lot.ID())
	suite.Require().NoError(err)
	suite.InDelta(40, reloaded.RemainingKg(), 1e-9)

	var movements int64
	suite.Require().NoError(suite.db.Table("stock_movements").Where("lot_id = ?", lot.ID().Bytes()).Count(&movements).Error)
	suite.Equal(int64(1), movements)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateProductionOrderRetriesAfterUniqueViolation() {
	ctx := context.Background()
	plant, err := pgtest.SeedPlant(ctx, suite.db, "2400", 1)
	suite.Require().NoError(err)

	// an uncommitted order takes UE-2400-002; the handler reads UE-2400-001 as the latest,
	// blocks on the unique index and fails with 23505 once the holder commits
	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	taken, err := productionorder.NewProductionOrder(kernel.NewUUID(), "UE-2400-002", plant.Die.ID(), "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(holder.ProductionOrderRepository().Add(ctx, taken))

	cmd, err := commands.NewCreateProductionOrderCommand(kernel.NewUUID(), plant.Die.ID(), "")
	suite.Require().NoError(err)
	handler := commands.NewCreateProductionOrderCommandHandler(productionOrderUoWFactory{suite.factory})

	type created struct {
		number string
		err    error
	}
	done := make(chan created, 1)
	go func() {
		number, hErr := handler.Handle(ctx, cmd)
		done <- created{number: number, err: hErr}
	}()

	select {
	case res := <-done:
		suite.FailNow("insert did not wait for the uncommitted order number", "result: %+v", res)
	case <-time.After(blockedFor):
	}

	suite.Require().NoError(holder.Commit(ctx))

	select {
	case res := <-done:
		suite.Require().NoError(res.err)
		suite.Equal("UE-2400-003", res.number)
	case <-time.After(10 * time.Second):
		suite.FailNow("create production order never finished")
	}

	var numbers []string
	suite.Require().NoError(suite.db.Table("production_orders").
		Where("die_id = ?", plant.Die.ID().Bytes()).Pluck("order_number", &numbers).Error)
	sort.Strings(numbers)
	suite.Equal([]string{"UE-2400-001", "UE-2400-002", "UE-2400-003"}, numbers)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateOrderNumberWithoutRaceIsTranslated() {
	ctx := context.Background()
	plant, err := pgtest.SeedPlant(ctx, suite.db, "2500", 1)
	suite.Require().NoError(err)

	dup, err := productionorder.NewProductionOrder(kernel.NewUUID(), plant.Order.OrderNumber(), plant.Die.ID(), "", time.Now())
	suite.Require().NoError(err)

	err = suite.factory.Create().ProductionOrderRepository().Add(ctx, dup)

	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
}
