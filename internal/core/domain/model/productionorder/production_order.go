package productionorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var (
	ErrProductionOrderIsNotConstructed = errors.New("ProductionOrder must be created via NewProductionOrder constructor")

	// ErrAlreadyExpanded is returned when expansion is requested for an order that has
	// left the Waiting status. Expansion is a one-shot operation.
	ErrAlreadyExpanded = errors.New("production order has already been expanded")

	// ErrNotExpanded is returned when an operator tries to start a Waiting order by hand.
	// Only expansion moves an order from Waiting to InProgress.
	ErrNotExpanded = errors.New("production order has not been expanded")
)

// ProductionOrder is one build attempt of a die.
//
// Invariants:
//   - order number is required and unique (enforced by storage)
//   - started_at is set the first time the order enters InProgress and never overwritten
//   - completed_at is set when the order reaches Completed or Cancelled
type ProductionOrder struct {
	kernel.EventRecorder

	id            kernel.UUID
	orderNumber   string
	dieID         kernel.UUID
	status        kernel.OrderStatus
	notes         string
	createdAt     time.Time
	startedAt     *time.Time
	completedAt   *time.Time
	isConstructed bool
}

// NewProductionOrder creates a Waiting production order.
//
// Example:
//
//	number := services.NewOrderNumberGenerator().ProductionOrderNumber(d.DieNumber(), latest)
//	po, err := productionorder.NewProductionOrder(kernel.NewUUID(), number, d.ID(), "", time.Now())
func NewProductionOrder(
	id kernel.UUID,
	orderNumber string,
	dieID kernel.UUID,
	notes string,
	createdAt time.Time,
) (*ProductionOrder, error) {
	o := &ProductionOrder{
		status:        kernel.OrderWaiting,
		notes:         strings.TrimSpace(notes),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setDieID(dieID),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreProductionOrder rebuilds an order from persistence.
func RestoreProductionOrder(
	id kernel.UUID,
	orderNumber string,
	dieID kernel.UUID,
	status kernel.OrderStatus,
	notes string,
	createdAt time.Time,
	startedAt, completedAt *time.Time,
) (*ProductionOrder, error) {
	o, err := NewProductionOrder(id, orderNumber, dieID, notes, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.startedAt = copyTime(startedAt)
	o.completedAt = copyTime(completedAt)
	return o, nil
}

func (o *ProductionOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrProductionOrderIsNotConstructed
	}
	return nil
}

func (o *ProductionOrder) ID() kernel.UUID            { return o.id }
func (o *ProductionOrder) OrderNumber() string        { return o.orderNumber }
func (o *ProductionOrder) DieID() kernel.UUID         { return o.dieID }
func (o *ProductionOrder) Status() kernel.OrderStatus { return o.status }
func (o *ProductionOrder) Notes() string              { return o.notes }
func (o *ProductionOrder) CreatedAt() time.Time       { return o.createdAt }
func (o *ProductionOrder) StartedAt() *time.Time      { return copyTime(o.startedAt) }
func (o *ProductionOrder) CompletedAt() *time.Time    { return copyTime(o.completedAt) }

// ValidateExpandable fails unless the order is still Waiting.
func (o *ProductionOrder) ValidateExpandable() error {
	if o.status != kernel.OrderWaiting {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyExpanded, o.orderNumber, o.status)
	}
	return nil
}

// MarkExpanded moves the order to InProgress after its work orders were created.
func (o *ProductionOrder) MarkExpanded(workOrderCount int, now time.Time) error {
	if err := o.ValidateExpandable(); err != nil {
		return err
	}
	if err := o.start(now); err != nil {
		return err
	}
	o.RecordEvent(newExpandedEvent(o, workOrderCount, now))
	return nil
}

// ChangeStatus applies an operator requested status.
//   - InProgress is accepted for orders already InProgress; Waiting orders start through MarkExpanded
//   - Completed and Cancelled set completed_at
func (o *ProductionOrder) ChangeStatus(target kernel.OrderStatus, now time.Time) error {
	from := o.status
	switch target {
	case kernel.OrderInProgress:
		if o.status == kernel.OrderWaiting {
			return fmt.Errorf("%w: %s must be expanded before it starts", ErrNotExpanded, o.orderNumber)
		}
		if err := o.start(now); err != nil {
			return err
		}
	case kernel.OrderCompleted, kernel.OrderCancelled:
		next, err := o.status.TransitionTo(target)
		if err != nil {
			return err
		}
		o.status = next
		completed := now.UTC()
		o.completedAt = &completed
	case kernel.OrderWaiting, kernel.UnknownOrderStatus:
		if _, err := o.status.TransitionTo(target); err != nil {
			return err
		}
	}

	if from != o.status {
		o.RecordEvent(newStatusChangedEvent(o, from, o.status, now))
	}
	return nil
}

// Complete finishes an InProgress order.
func (o *ProductionOrder) Complete(now time.Time) error {
	return o.ChangeStatus(kernel.OrderCompleted, now)
}

// Cancel abandons a non-terminal order.
func (o *ProductionOrder) Cancel(now time.Time) error {
	return o.ChangeStatus(kernel.OrderCancelled, now)
}

// UpdateNotes replaces the free text notes.
func (o *ProductionOrder) UpdateNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

func (o *ProductionOrder) start(now time.Time) error {
	next, err := o.status.Start()
	if err != nil {
		return err
	}
	o.status = next
	if o.startedAt == nil {
		started := now.UTC()
		o.startedAt = &started
	}
	return nil
}

func (o *ProductionOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ProductionOrder) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = number
	return nil
}

func (o *ProductionOrder) setDieID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("die", err)
	}
	o.dieID = id
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
