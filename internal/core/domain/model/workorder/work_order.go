package workorder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// WorkCenterEffect tells the caller what an operation transition requires from its work center.
type WorkCenterEffect int

const (
	WorkCenterUnchanged WorkCenterEffect = iota
	WorkCenterOccupy
	WorkCenterRelease
)

// Transition describes an applied operation status change.
type Transition struct {
	OperationID  kernel.UUID
	WorkCenterID kernel.UUID
	From         OperationStatus
	To           OperationStatus
	Effect       WorkCenterEffect
}

// OperationDetails holds the fields an operator may edit independently of status.
// Nil fields are left untouched.
type OperationDetails struct {
	OperatorName             *string
	Notes                    *string
	EstimatedDurationMinutes *int
}

// WorkOrder is the execution unit producing one die component of a production order.
//
// Invariants:
//   - operation sequence numbers are unique and define a strict total order
//   - the operation set is fixed once the work order left Waiting
//   - an operation enters InProgress only when every lower sequence operation is Completed
//   - actual consumption only grows
type WorkOrder struct {
	kernel.EventRecorder

	id                       kernel.UUID
	productionOrderID        kernel.UUID
	dieComponentID           kernel.UUID
	orderNumber              string
	status                   kernel.OrderStatus
	theoreticalConsumptionKg float64
	actualConsumptionKg      float64
	lotID                    *kernel.UUID
	operations               []*Operation
	isConstructed            bool
}

// NewWorkOrder creates a Waiting work order without operations.
func NewWorkOrder(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	dieComponentID kernel.UUID,
	orderNumber string,
	theoreticalConsumptionKg float64,
) (*WorkOrder, error) {
	w := &WorkOrder{
		status:        kernel.OrderWaiting,
		operations:    make([]*Operation, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setParents(productionOrderID, dieComponentID),
		w.setOrderNumber(orderNumber),
		w.setTheoreticalConsumption(theoreticalConsumptionKg),
	); err != nil {
		return nil, err
	}
	return w, nil
}

// RestoreWorkOrder rebuilds a work order and its operations from persistence.
func RestoreWorkOrder(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	dieComponentID kernel.UUID,
	orderNumber string,
	status kernel.OrderStatus,
	theoreticalConsumptionKg float64,
	actualConsumptionKg float64,
	lotID *kernel.UUID,
	operations []*Operation,
) (*WorkOrder, error) {
	w, err := NewWorkOrder(id, productionOrderID, dieComponentID, orderNumber, theoreticalConsumptionKg)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if actualConsumptionKg < 0 {
		return nil, errs.NewValueIsOutOfRangeError("actual consumption kg", actualConsumptionKg, 0, "unbounded")
	}
	for _, op := range operations {
		if err = w.attach(op); err != nil {
			return nil, err
		}
	}
	w.status = status
	w.actualConsumptionKg = actualConsumptionKg
	if lotID != nil {
		l := *lotID
		w.lotID = &l
	}
	return w, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

func (w *WorkOrder) ID() kernel.UUID                   { return w.id }
func (w *WorkOrder) ProductionOrderID() kernel.UUID    { return w.productionOrderID }
func (w *WorkOrder) DieComponentID() kernel.UUID       { return w.dieComponentID }
func (w *WorkOrder) OrderNumber() string               { return w.orderNumber }
func (w *WorkOrder) Status() kernel.OrderStatus        { return w.status }
func (w *WorkOrder) TheoreticalConsumptionKg() float64 { return w.theoreticalConsumptionKg }
func (w *WorkOrder) ActualConsumptionKg() float64      { return w.actualConsumptionKg }

func (w *WorkOrder) LotID() *kernel.UUID {
	if w.lotID == nil {
		return nil
	}
	l := *w.lotID
	return &l
}

// Operations returns copies of the operations ordered by sequence number.
func (w *WorkOrder) Operations() []*Operation {
	out := make([]*Operation, 0, len(w.operations))
	for _, op := range w.operations {
		out = append(out, op.clone())
	}
	return out
}

// Operation returns a copy of the operation with the given id.
func (w *WorkOrder) Operation(operationID kernel.UUID) (*Operation, error) {
	op, err := w.find(operationID)
	if err != nil {
		return nil, err
	}
	return op.clone(), nil
}

// AddOperation appends a materialised BOM step. Only a Waiting work order accepts operations.
func (w *WorkOrder) AddOperation(op *Operation) error {
	if w.status != kernel.OrderWaiting {
		return errs.NewValueIsInvalidErrorWithCause(
			"work order",
			fmt.Errorf("operations of %s are fixed once it is %s", w.orderNumber, w.status),
		)
	}
	return w.attach(op)
}

// TransitionOperation applies the operation state machine:
//   - Waiting/Paused → InProgress requires all lower sequence operations Completed
//   - InProgress → Paused
//   - InProgress → Completed sets completed_at
//   - any non-terminal → Cancelled sets completed_at
//
// The returned Transition tells the caller whether the work center has to be occupied or
// released. The first operation that starts moves a Waiting work order to InProgress.
func (w *WorkOrder) TransitionOperation(
	operationID kernel.UUID,
	target OperationStatus,
	operatorName string,
	now time.Time,
) (Transition, error) {
	if w.status.IsTerminal() {
		return Transition{}, errs.NewValueIsInvalidErrorWithCause(
			"work order",
			fmt.Errorf("%s is %s", w.orderNumber, w.status),
		)
	}
	if err := target.Validate(); err != nil {
		return Transition{}, err
	}

	op, err := w.find(operationID)
	if err != nil {
		return Transition{}, err
	}
	from := op.status
	if !from.canTransitionTo(target) {
		return Transition{}, errs.NewValueIsInvalidErrorWithCause(
			"operation status",
			fmt.Errorf("cannot change operation %d from %s to %s", op.sequenceNumber, from, target),
		)
	}

	effect := WorkCenterUnchanged
	at := now.UTC()

	switch target {
	case OperationInProgress:
		if blocking := w.blockingSequence(op); len(blocking) > 0 {
			return Transition{}, &SequenceDependencyViolationError{
				SequenceNumber:   op.sequenceNumber,
				BlockingSequence: blocking,
			}
		}
		if op.startedAt == nil {
			op.startedAt = &at
		}
		if name := strings.TrimSpace(operatorName); name != "" {
			op.operatorName = name
		}
		if from == OperationWaiting {
			effect = WorkCenterOccupy
		}
		if w.status == kernel.OrderWaiting {
			w.status = kernel.OrderInProgress
		}
	case OperationCompleted, OperationCancelled:
		op.completedAt = &at
		if from.holdsWorkCenter() {
			effect = WorkCenterRelease
		}
	case OperationPaused, OperationWaiting, UnknownOperationStatus:
	}
	op.status = target

	w.RecordEvent(OperationStatusChangedEvent{
		BaseEvent:       kernel.NewBaseEvent(EventTypeOperationStatusChanged, w.id, now),
		WorkOrderNumber: w.orderNumber,
		OperationID:     op.id,
		SequenceNumber:  op.sequenceNumber,
		WorkCenterID:    op.workCenterID,
		From:            from.String(),
		To:              target.String(),
		OperatorName:    op.operatorName,
	})

	return Transition{
		OperationID:  op.id,
		WorkCenterID: op.workCenterID,
		From:         from,
		To:           target,
		Effect:       effect,
	}, nil
}

// UpdateOperationDetails edits operator, notes and duration estimate. Status is untouched.
func (w *WorkOrder) UpdateOperationDetails(operationID kernel.UUID, details OperationDetails) error {
	op, err := w.find(operationID)
	if err != nil {
		return err
	}
	if details.EstimatedDurationMinutes != nil {
		if err = op.setEstimatedDuration(*details.EstimatedDurationMinutes); err != nil {
			return err
		}
	}
	if details.OperatorName != nil {
		op.operatorName = strings.TrimSpace(*details.OperatorName)
	}
	if details.Notes != nil {
		op.notes = strings.TrimSpace(*details.Notes)
	}
	return nil
}

// RecordConsumption adds material drawn from a lot to the actual consumption.
func (w *WorkOrder) RecordConsumption(quantityKg float64) error {
	if quantityKg <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity kg", quantityKg, "> 0", "unbounded")
	}
	total := kernel.RoundQuantity(w.actualConsumptionKg + quantityKg)
	if err := kernel.ValidateKg("actual consumption kg", total); err != nil {
		return err
	}
	w.actualConsumptionKg = total
	return nil
}

// BindLot records the lot the work order draws its material from.
func (w *WorkOrder) BindLot(lotID kernel.UUID) error {
	if err := lotID.Validate(); err != nil {
		return err
	}
	w.lotID = &lotID
	return nil
}

func (w *WorkOrder) blockingSequence(op *Operation) []int {
	blocking := make([]int, 0)
	for _, sibling := range w.operations {
		if sibling.sequenceNumber >= op.sequenceNumber {
			break
		}
		if sibling.status != OperationCompleted {
			blocking = append(blocking, sibling.sequenceNumber)
		}
	}
	return blocking
}

func (w *WorkOrder) find(operationID kernel.UUID) (*Operation, error) {
	for _, op := range w.operations {
		if op.id.IsEqual(operationID) {
			return op, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("operation", operationID.String())
}

func (w *WorkOrder) attach(op *Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	for _, existing := range w.operations {
		if existing.id.IsEqual(op.id) {
			return errs.NewDuplicateIdentifierError("operation", op.id.String())
		}
		if existing.sequenceNumber == op.sequenceNumber {
			return errs.NewDuplicateIdentifierError("sequence number", op.sequenceNumber)
		}
	}
	w.operations = append(w.operations, op)
	sort.SliceStable(w.operations, func(i, j int) bool {
		return w.operations[i].sequenceNumber < w.operations[j].sequenceNumber
	})
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setParents(productionOrderID, dieComponentID kernel.UUID) error {
	if err := productionOrderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("production order", err)
	}
	if err := dieComponentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("die component", err)
	}
	w.productionOrderID = productionOrderID
	w.dieComponentID = dieComponentID
	return nil
}

func (w *WorkOrder) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	w.orderNumber = number
	return nil
}

func (w *WorkOrder) setTheoreticalConsumption(kg float64) error {
	if kg < 0 {
		return errs.NewValueIsOutOfRangeError("theoretical consumption kg", kg, 0, "unbounded")
	}
	if err := kernel.ValidateKg("theoretical consumption kg", kg); err != nil {
		return err
	}
	w.theoreticalConsumptionKg = kg
	return nil
}
