// Package postgres provides the GORM-based Unit of Work used by every command handler.
// The Unit of Work maintains the aggregates affected by a business transaction, hands out
// repositories bound to the same database transaction and writes the domain events of the
// tracked aggregates to the outbox before committing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	wo, err := uow.WorkOrderRepository().GetByOperationForUpdate(ctx, operationID)
//	if err != nil {
//	    return err
//	}
//	// mutate aggregates, then save them through the same unit of work
//	if err = uow.WorkOrderRepository().Update(ctx, wo); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Repositories expose GetForUpdate methods where row locks are required
package postgres

import (
	"context"

	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/adapters/out/postgres/dierepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/lotrepo"
	"dietrack/internal/adapters/out/postgres/operatorrepo"
	"dietrack/internal/adapters/out/postgres/outboxrepo"
	"dietrack/internal/adapters/out/postgres/productionorderrepo"
	"dietrack/internal/adapters/out/postgres/stockitemrepo"
	"dietrack/internal/adapters/out/postgres/workcenterrepo"
	"dietrack/internal/adapters/out/postgres/workorderrepo"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that embed kernel.EventRecorder.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// stored through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events of every tracked aggregate to the outbox and
// commits the transaction. Events are cleared from the aggregates only when the commit
// succeeds. After commit, the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no active transaction exists.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources := uow.eventSources()
	events := make([]kernel.DomainEvent, 0)
	for _, source := range sources {
		events = append(events, source.DomainEvents()...)
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, events); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, source := range sources {
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no active transaction exists, which makes a deferred
// Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) DieRepository() ports.DieRepository {
	return dierepo.NewGormDieRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DieTypeRepository() ports.DieTypeRepository {
	return dietyperepo.NewGormDieTypeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StockItemRepository() ports.StockItemRepository {
	return stockitemrepo.NewGormStockItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OperatorRepository() ports.OperatorRepository {
	return operatorrepo.NewGormOperatorRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ComponentTypeRepository() ports.ComponentTypeRepository {
	return componenttyperepo.NewGormComponentTypeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WorkCenterRepository() ports.WorkCenterRepository {
	return workcenterrepo.NewGormWorkCenterRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return productionorderrepo.NewGormProductionOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return workorderrepo.NewGormWorkOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LotRepository() ports.LotRepository {
	return lotrepo.NewGormLotRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction if one is active, otherwise the main connection.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// eventSources returns each tracked aggregate recording events once, in tracking order.
func (uow *GormUnitOfWork) eventSources() []eventSource {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	sources := make([]eventSource, 0, len(uow.trackedAggregates))

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.Aggregate]; dup {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}
		sources = append(sources, source)
	}
	return sources
}
