package commands

import (
	"context"
	"errors"
	"time"

	"dietrack/internal/core/domain/model/productionorder"
	"dietrack/internal/core/domain/services"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"
)

// createProductionOrderAttempts bounds the regeneration of an order number that a
// concurrent request took first.
const createProductionOrderAttempts = 2

// CreateProductionOrderCommandHandler numbers and persists a new production order.
//
// Numbers are derived from the greatest existing number of the die, so two concurrent
// requests can produce the same one. The unique index rejects the second insert; the
// handler then starts a fresh transaction and regenerates once.
type CreateProductionOrderCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
	numbers    services.OrderNumberGenerator
}

func NewCreateProductionOrderCommandHandler(uowFactory ProductionOrderUoWFactory) CreateProductionOrderCommandHandler {
	return CreateProductionOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    services.NewOrderNumberGenerator(),
	}
}

// Handle returns the generated order number.
func (h CreateProductionOrderCommandHandler) Handle(ctx context.Context, cmd CreateProductionOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	ctx, span := tracing.StartSpan(ctx, "CreateProductionOrderCommandHandler.Handle")
	defer span.End()

	var err error
	for attempt := 1; attempt <= createProductionOrderAttempts; attempt++ {
		var number string
		number, err = h.create(ctx, cmd)
		if err == nil {
			metrics.ProductionOrdersCreatedTotal.Inc()
			return number, nil
		}
		if !errors.Is(err, errs.ErrDuplicateIdentifier) {
			span.RecordError(err)
			return "", err
		}
	}
	span.RecordError(err)
	return "", err
}

func (h CreateProductionOrderCommandHandler) create(ctx context.Context, cmd CreateProductionOrderCommand) (string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DieRepository().Get(ctx, cmd.DieID())
	if err != nil {
		return "", err
	}

	poRepo := uow.ProductionOrderRepository()
	latest, err := poRepo.LatestOrderNumber(ctx, d.ID(), h.numbers.ProductionOrderPrefix(d.DieNumber()))
	if err != nil {
		return "", err
	}

	number := h.numbers.ProductionOrderNumber(d.DieNumber(), latest)
	po, err := productionorder.NewProductionOrder(cmd.ProductionOrderID(), number, d.ID(), cmd.Notes(), time.Now())
	if err != nil {
		return "", err
	}

	if err = poRepo.Add(ctx, po); err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return number, nil
}
