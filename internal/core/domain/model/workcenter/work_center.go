package workcenter

import (
	"errors"
	"fmt"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var (
	ErrWorkCenterIsNotConstructed = errors.New("WorkCenter must be created via NewWorkCenter constructor")

	// ErrWorkCenterUnavailable is returned when an operation tries to occupy a work center
	// that is Busy or UnderMaintenance.
	ErrWorkCenterUnavailable = errors.New("work center is not available")

	// ErrWorkCenterInUse is returned when deleting a work center still referenced by operations.
	ErrWorkCenterInUse = errors.New("work center is referenced by operations")
)

// WorkCenter is a production resource (machine or station) that performs operations.
//
// Invariants:
//   - name is required and at most 100 characters
//   - capacity, setup time and cost are never negative
//   - only an Available work center can be occupied by an operation
type WorkCenter struct {
	id               kernel.UUID
	name             string
	centerType       string
	location         string
	capacityPerHour  float64
	setupTimeMinutes int
	costPerHour      float64
	status           Status
	isConstructed    bool
}

// Attributes groups the descriptive fields of a work center.
type Attributes struct {
	Type             string
	Location         string
	CapacityPerHour  float64
	SetupTimeMinutes int
	CostPerHour      float64
}

// NewWorkCenter creates an Available work center.
func NewWorkCenter(id kernel.UUID, name string, attrs Attributes) (*WorkCenter, error) {
	wc := &WorkCenter{status: Available, isConstructed: true}

	if err := errors.Join(
		wc.setID(id),
		wc.setName(name),
		wc.setAttributes(attrs),
	); err != nil {
		return nil, err
	}
	return wc, nil
}

// RestoreWorkCenter rebuilds a work center from persistence.
func RestoreWorkCenter(id kernel.UUID, name string, attrs Attributes, status Status) (*WorkCenter, error) {
	wc, err := NewWorkCenter(id, name, attrs)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	wc.status = status
	return wc, nil
}

func (w *WorkCenter) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkCenterIsNotConstructed
	}
	return nil
}

func (w *WorkCenter) ID() kernel.UUID { return w.id }
func (w *WorkCenter) Name() string    { return w.name }
func (w *WorkCenter) Status() Status  { return w.status }

// Attributes returns a copy of the descriptive fields.
func (w *WorkCenter) Attributes() Attributes {
	return Attributes{
		Type:             w.centerType,
		Location:         w.location,
		CapacityPerHour:  w.capacityPerHour,
		SetupTimeMinutes: w.setupTimeMinutes,
		CostPerHour:      w.costPerHour,
	}
}

// Occupy marks the work center Busy when an operation starts on it.
func (w *WorkCenter) Occupy() error {
	if w.status != Available {
		return fmt.Errorf("%w: %s is %s", ErrWorkCenterUnavailable, w.name, w.status)
	}
	w.status = Busy
	return nil
}

// Release frees a Busy work center. Releasing an Available or UnderMaintenance
// work center leaves it untouched.
func (w *WorkCenter) Release() {
	if w.status == Busy {
		w.status = Available
	}
}

// StartMaintenance takes an Available work center out of production.
func (w *WorkCenter) StartMaintenance() error {
	if w.status != Available && w.status != UnderMaintenance {
		return errs.NewValueIsInvalidErrorWithCause(
			"work center status",
			fmt.Errorf("cannot start maintenance while %s", w.status),
		)
	}
	w.status = UnderMaintenance
	return nil
}

// FinishMaintenance returns the work center to Available.
func (w *WorkCenter) FinishMaintenance() error {
	if w.status != UnderMaintenance {
		return errs.NewValueIsInvalidErrorWithCause(
			"work center status",
			fmt.Errorf("cannot finish maintenance while %s", w.status),
		)
	}
	w.status = Available
	return nil
}

// ChangeStatus applies an operator requested status. Busy is reserved to operations
// and cannot be requested directly.
func (w *WorkCenter) ChangeStatus(target Status) error {
	switch target {
	case UnderMaintenance:
		return w.StartMaintenance()
	case Available:
		if w.status == Busy {
			w.Release()
			return nil
		}
		return w.FinishMaintenance()
	case Busy, Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"work center status",
		fmt.Errorf("%s cannot be requested directly", target),
	)
}

func (w *WorkCenter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkCenter) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > 100 {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, 100)
	}
	w.name = name
	return nil
}

func (w *WorkCenter) setAttributes(attrs Attributes) error {
	if attrs.CapacityPerHour < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity per hour", fmt.Errorf("%v is negative", attrs.CapacityPerHour))
	}
	if attrs.SetupTimeMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("setup time", fmt.Errorf("%d is negative", attrs.SetupTimeMinutes))
	}
	if attrs.CostPerHour < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost per hour", fmt.Errorf("%v is negative", attrs.CostPerHour))
	}
	w.centerType = strings.TrimSpace(attrs.Type)
	w.location = strings.TrimSpace(attrs.Location)
	w.capacityPerHour = attrs.CapacityPerHour
	w.setupTimeMinutes = attrs.SetupTimeMinutes
	w.costPerHour = attrs.CostPerHour
	return nil
}
