package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/core/domain/services"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"
)

// ExpandProductionOrderCommandHandler loads the order, its die and the component types
// of the die, delegates to services.WorkOrderExpander and persists every work order, the die
// and the order in one transaction.
//
// The production order row is locked for the whole transaction, so a second expansion of
// the same order waits and then finds it InProgress. Work orders left over from an earlier
// expansion also reject the request.
//
// Example:
//
//	cmd, _ := NewExpandProductionOrderCommand(poID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, die or component type
//	case errors.Is(err, services.ErrInvalidExpansionRequest):
//	    // precondition failed, nothing was written
//	}
type ExpandProductionOrderCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
	expander   services.WorkOrderExpander
}

func NewExpandProductionOrderCommandHandler(uowFactory ProductionOrderUoWFactory) ExpandProductionOrderCommandHandler {
	return ExpandProductionOrderCommandHandler{
		uowFactory: uowFactory,
		expander:   services.NewWorkOrderExpander(),
	}
}

// Handle returns the number of created work orders.
func (h ExpandProductionOrderCommandHandler) Handle(ctx context.Context, cmd ExpandProductionOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ctx, span := tracing.StartSpan(ctx, "ExpandProductionOrderCommandHandler.Handle")
	defer span.End()

	created, err := h.expand(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		metrics.ExpansionsRejectedTotal.WithLabelValues(expansionRejectReason(err)).Inc()
		return 0, err
	}

	metrics.ProductionOrdersExpandedTotal.Inc()
	metrics.WorkOrdersCreatedTotal.Add(float64(created))
	return created, nil
}

func (h ExpandProductionOrderCommandHandler) expand(ctx context.Context, cmd ExpandProductionOrderCommand) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	poRepo := uow.ProductionOrderRepository()
	dieRepo := uow.DieRepository()
	woRepo := uow.WorkOrderRepository()

	po, err := poRepo.GetForUpdate(ctx, cmd.ProductionOrderID())
	if err != nil {
		return 0, err
	}

	existing, err := woRepo.CountByProductionOrder(ctx, po.ID())
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, fmt.Errorf("%w: production order %s already has %d work orders",
			services.ErrInvalidExpansionRequest, po.OrderNumber(), existing)
	}

	d, err := dieRepo.Get(ctx, po.DieID())
	if err != nil {
		return 0, err
	}

	typeIDs := make([]kernel.UUID, 0, len(d.Components()))
	for _, c := range d.Components() {
		typeIDs = append(typeIDs, c.ComponentTypeID())
	}
	componentTypes, err := uow.ComponentTypeRepository().GetMany(ctx, typeIDs)
	if err != nil {
		return 0, err
	}

	workOrders, err := h.expander.Expand(po, d, componentTypes, time.Now())
	if err != nil {
		return 0, err
	}

	for _, wo := range workOrders {
		if err = woRepo.Add(ctx, wo); err != nil {
			return 0, err
		}
	}
	if err = dieRepo.Update(ctx, d); err != nil {
		return 0, err
	}
	if err = poRepo.Update(ctx, po); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(workOrders), nil
}

func expansionRejectReason(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidExpansionRequest):
		return "invalid_request"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrPersistenceConflict):
		return "conflict"
	default:
		return "error"
	}
}
