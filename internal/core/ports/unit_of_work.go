package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it after Begin share the transaction. Domain events recorded by
// the aggregates they store are written to the outbox as part of Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes pending domain events to the outbox and commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	DieRepository() DieRepository
	DieTypeRepository() DieTypeRepository
	StockItemRepository() StockItemRepository
	OperatorRepository() OperatorRepository
	ComponentTypeRepository() ComponentTypeRepository
	WorkCenterRepository() WorkCenterRepository
	ProductionOrderRepository() ProductionOrderRepository
	WorkOrderRepository() WorkOrderRepository
	LotRepository() LotRepository
	OutboxRepository() OutboxRepository
}
