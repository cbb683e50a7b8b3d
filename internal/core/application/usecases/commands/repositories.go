// Package commands contains business operations that modify system state.
// Every handler validates its command, opens one unit of work, loads the aggregates it
// needs, applies the domain rules and commits. A failing handler never commits partially.
package commands

import (
	"context"

	"dietrack/internal/core/ports"
)

// Unit of Work interfaces narrow the transaction to the repositories a handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DieRepoFactory interface {
		DieRepository() ports.DieRepository
	}

	DieTypeRepoFactory interface {
		DieTypeRepository() ports.DieTypeRepository
	}

	StockItemRepoFactory interface {
		StockItemRepository() ports.StockItemRepository
	}

	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	ComponentTypeRepoFactory interface {
		ComponentTypeRepository() ports.ComponentTypeRepository
	}

	WorkCenterRepoFactory interface {
		WorkCenterRepository() ports.WorkCenterRepository
	}

	ProductionOrderRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// DieUoW is used by die commands. The die type, component types and stock items are
	// read to check what a die or a new component references.
	DieUoW interface {
		TxManager
		DieRepoFactory
		DieTypeRepoFactory
		ComponentTypeRepoFactory
		StockItemRepoFactory
	}

	DieUoWFactory interface {
		Create() DieUoW
	}

	// DieTypeUoW is used by die type maintenance. Component types are read before they
	// are listed.
	DieTypeUoW interface {
		TxManager
		DieTypeRepoFactory
		ComponentTypeRepoFactory
	}

	DieTypeUoWFactory interface {
		Create() DieTypeUoW
	}

	// OperatorUoW is used by the operator registry. Work centers are read before an
	// operator is assigned to them.
	OperatorUoW interface {
		TxManager
		OperatorRepoFactory
		WorkCenterRepoFactory
	}

	OperatorUoWFactory interface {
		Create() OperatorUoW
	}

	// ComponentTypeUoW is used by BOM maintenance. Work centers are read to check the
	// preferred work center of a step.
	ComponentTypeUoW interface {
		TxManager
		ComponentTypeRepoFactory
		WorkCenterRepoFactory
	}

	ComponentTypeUoWFactory interface {
		Create() ComponentTypeUoW
	}

	// WorkCenterUoW is used by work center commands. Operations are consulted before a
	// work center is deleted or released.
	WorkCenterUoW interface {
		TxManager
		WorkCenterRepoFactory
		WorkOrderRepoFactory
	}

	WorkCenterUoWFactory interface {
		Create() WorkCenterUoW
	}

	// ProductionOrderUoW spans everything expansion reads and writes.
	ProductionOrderUoW interface {
		TxManager
		ProductionOrderRepoFactory
		DieRepoFactory
		ComponentTypeRepoFactory
		WorkOrderRepoFactory
	}

	ProductionOrderUoWFactory interface {
		Create() ProductionOrderUoW
	}

	// OperationUoW is used by operation transitions, which may occupy or release a
	// work center in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   wo, err := uow.WorkOrderRepository().GetByOperationForUpdate(ctx, operationID)
	//   wc, err := uow.WorkCenterRepository().GetForUpdate(ctx, wo.Operation(...).WorkCenterID())
	//   // ... transition, occupy or release
	//
	//   err = uow.Commit(ctx)
	OperationUoW interface {
		TxManager
		WorkOrderRepoFactory
		WorkCenterRepoFactory
	}

	OperationUoWFactory interface {
		Create() OperationUoW
	}

	// InventoryUoW is used by the stock ledger, which debits a lot and books the consumption
	// on the work order atomically. The stock item catalogue lives in the same transaction.
	InventoryUoW interface {
		TxManager
		LotRepoFactory
		StockItemRepoFactory
		WorkOrderRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
