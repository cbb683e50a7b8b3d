package commands

import (
	"context"
	"errors"
	"time"

	"dietrack/internal/core/domain/model/workcenter"
	"dietrack/internal/core/domain/model/workorder"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/metrics"
	"dietrack/internal/pkg/tracing"
)

// TransitionOperationCommandHandler applies an operation status change together with its
// work center side effect.
//
// The parent work order row is locked first. Every transition of a sibling operation takes
// the same lock, so the sequence dependency check and the status write can never interleave
// with another transition of the same work order. The work center row is locked before it is
// occupied, so two work orders cannot start on it at the same time.
type TransitionOperationCommandHandler struct {
	uowFactory OperationUoWFactory
}

func NewTransitionOperationCommandHandler(uowFactory OperationUoWFactory) TransitionOperationCommandHandler {
	return TransitionOperationCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated operation.
//
// Errors:
//   - errs.ErrObjectNotFound: unknown operation
//   - workorder.ErrSequenceDependencyViolation: an earlier operation is not Completed
//   - workcenter.ErrWorkCenterUnavailable: the work center is Busy or UnderMaintenance
//   - errs.ErrValueIsInvalid: the transition is not allowed from the current status
func (h TransitionOperationCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOperationCommand,
) (*workorder.Operation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "TransitionOperationCommandHandler.Handle")
	defer span.End()

	op, err := h.transition(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		metrics.OperationTransitionsRejectedTotal.WithLabelValues(transitionRejectReason(err)).Inc()
		return nil, err
	}

	metrics.OperationTransitionsTotal.WithLabelValues(op.Status().String()).Inc()
	return op, nil
}

func (h TransitionOperationCommandHandler) transition(
	ctx context.Context,
	cmd TransitionOperationCommand,
) (*workorder.Operation, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	woRepo := uow.WorkOrderRepository()
	wcRepo := uow.WorkCenterRepository()

	wo, err := woRepo.GetByOperationForUpdate(ctx, cmd.OperationID())
	if err != nil {
		return nil, err
	}

	transition, err := wo.TransitionOperation(cmd.OperationID(), cmd.Target(), cmd.OperatorName(), time.Now())
	if err != nil {
		return nil, err
	}

	if transition.Effect != workorder.WorkCenterUnchanged {
		wc, err := wcRepo.GetForUpdate(ctx, transition.WorkCenterID)
		if err != nil {
			return nil, err
		}
		if transition.Effect == workorder.WorkCenterOccupy {
			if err = wc.Occupy(); err != nil {
				return nil, err
			}
		} else {
			wc.Release()
		}
		if err = wcRepo.Update(ctx, wc); err != nil {
			return nil, err
		}
	}

	if err = woRepo.Update(ctx, wo); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo.Operation(cmd.OperationID())
}

func transitionRejectReason(err error) string {
	switch {
	case errors.Is(err, workorder.ErrSequenceDependencyViolation):
		return "sequence_dependency"
	case errors.Is(err, workcenter.ErrWorkCenterUnavailable):
		return "work_center_unavailable"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrValueIsInvalid):
		return "invalid_transition"
	default:
		return "error"
	}
}
