package commands_test

import (
	"context"
	"time"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/die"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/inventory"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/model/operator"
	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDieRepository struct{ mock.Mock }

func (m *MockDieRepository) Add(ctx context.Context, d *die.Die) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDieRepository) Update(ctx context.Context, d *die.Die) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDieRepository) Get(ctx context.Context, id kernel.UUID) (*die.Die, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*die.Die), args.Error(1)
}

type MockDieTypeRepository struct{ mock.Mock }

func (m *MockDieTypeRepository) Add(ctx context.Context, dt *dietype.DieType) error {
	args := m.Called(ctx, dt)
	return args.Error(0)
}

func (m *MockDieTypeRepository) Update(ctx context.Context, dt *dietype.DieType) error {
	args := m.Called(ctx, dt)
	return args.Error(0)
}

func (m *MockDieTypeRepository) Get(ctx context.Context, id kernel.UUID) (*dietype.DieType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dietype.DieType), args.Error(1)
}

type MockStockItemRepository struct{ mock.Mock }

func (m *MockStockItemRepository) Add(ctx context.Context, item *inventory.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockItem), args.Error(1)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, o *operator.Operator) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOperatorRepository) Update(ctx context.Context, o *operator.Operator) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetByRFID(ctx context.Context, rfidCode string) (*operator.Operator, error) {
	args := m.Called(ctx, rfidCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

type MockComponentTypeRepository struct{ mock.Mock }

func (m *MockComponentTypeRepository) Add(ctx context.Context, ct *componenttype.ComponentType) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockComponentTypeRepository) Update(ctx context.Context, ct *componenttype.ComponentType) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockComponentTypeRepository) Get(ctx context.Context, id kernel.UUID) (*componenttype.ComponentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*componenttype.ComponentType), args.Error(1)
}

func (m *MockComponentTypeRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*componenttype.ComponentType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*componenttype.ComponentType), args.Error(1)
}

type MockWorkCenterRepository struct{ mock.Mock }

func (m *MockWorkCenterRepository) Add(ctx context.Context, wc *workcenter.WorkCenter) error {
	args := m.Called(ctx, wc)
	return args.Error(0)
}

func (m *MockWorkCenterRepository) Update(ctx context.Context, wc *workcenter.WorkCenter) error {
	args := m.Called(ctx, wc)
	return args.Error(0)
}

func (m *MockWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workcenter.WorkCenter), args.Error(1)
}

func (m *MockWorkCenterRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workcenter.WorkCenter), args.Error(1)
}

func (m *MockWorkCenterRepository) GetAllBusy(ctx context.Context) ([]*workcenter.WorkCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workcenter.WorkCenter), args.Error(1)
}

func (m *MockWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductionOrderRepository struct{ mock.Mock }

func (m *MockProductionOrderRepository) Add(ctx context.Context, po *productionorder.ProductionOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) Update(ctx context.Context, po *productionorder.ProductionOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*productionorder.ProductionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productionorder.ProductionOrder), args.Error(1)
}

func (m *MockProductionOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*productionorder.ProductionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productionorder.ProductionOrder), args.Error(1)
}

func (m *MockProductionOrderRepository) LatestOrderNumber(
	ctx context.Context,
	dieID kernel.UUID,
	prefix string,
) (string, error) {
	args := m.Called(ctx, dieID, prefix)
	return args.String(0), args.Error(1)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetByOperationForUpdate(
	ctx context.Context,
	operationID kernel.UUID,
) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) CountByProductionOrder(
	ctx context.Context,
	productionOrderID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, productionOrderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) HasOperationsAtWorkCenter(
	ctx context.Context,
	workCenterID kernel.UUID,
	statuses ...workorder.OperationStatus,
) (bool, error) {
	args := m.Called(ctx, workCenterID, statuses)
	return args.Bool(0), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, lot *inventory.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) Update(ctx context.Context, lot *inventory.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Lot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Lot), args.Error(1)
}

func (m *MockLotRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Lot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Lot), args.Error(1)
}

func (m *MockLotRepository) AddMovement(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	args := m.Called(ctx, ids, publishedAt)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DieRepository() ports.DieRepository {
	args := m.Called()
	return args.Get(0).(ports.DieRepository)
}

func (m *MockUoW) DieTypeRepository() ports.DieTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.DieTypeRepository)
}

func (m *MockUoW) StockItemRepository() ports.StockItemRepository {
	args := m.Called()
	return args.Get(0).(ports.StockItemRepository)
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	args := m.Called()
	return args.Get(0).(ports.OperatorRepository)
}

func (m *MockUoW) ComponentTypeRepository() ports.ComponentTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.ComponentTypeRepository)
}

func (m *MockUoW) WorkCenterRepository() ports.WorkCenterRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkCenterRepository)
}

func (m *MockUoW) ProductionOrderRepository() ports.ProductionOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductionOrderRepository)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockDieUoWFactory struct{ mock.Mock }

func (m *MockDieUoWFactory) Create() commands.DieUoW {
	args := m.Called()
	return args.Get(0).(commands.DieUoW)
}

type MockDieTypeUoWFactory struct{ mock.Mock }

func (m *MockDieTypeUoWFactory) Create() commands.DieTypeUoW {
	args := m.Called()
	return args.Get(0).(commands.DieTypeUoW)
}

type MockOperatorUoWFactory struct{ mock.Mock }

func (m *MockOperatorUoWFactory) Create() commands.OperatorUoW {
	args := m.Called()
	return args.Get(0).(commands.OperatorUoW)
}

type MockComponentTypeUoWFactory struct{ mock.Mock }

func (m *MockComponentTypeUoWFactory) Create() commands.ComponentTypeUoW {
	args := m.Called()
	return args.Get(0).(commands.ComponentTypeUoW)
}

type MockWorkCenterUoWFactory struct{ mock.Mock }

func (m *MockWorkCenterUoWFactory) Create() commands.WorkCenterUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkCenterUoW)
}

type MockProductionOrderUoWFactory struct{ mock.Mock }

func (m *MockProductionOrderUoWFactory) Create() commands.ProductionOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionOrderUoW)
}

type MockOperationUoWFactory struct{ mock.Mock }

func (m *MockOperationUoWFactory) Create() commands.OperationUoW {
	args := m.Called()
	return args.Get(0).(commands.OperationUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}
