package dietype

import (
	"errors"
	"fmt"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var (
	ErrDieTypeIsNotConstructed = errors.New("DieType must be created via NewDieType constructor")

	// ErrDieTypeInactive is returned when a new die is registered under a retired die type.
	ErrDieTypeInactive = errors.New("die type is inactive")

	// ErrComponentTypeNotAllowed is returned when a die receives a component type its die
	// type does not list.
	ErrComponentTypeNotAllowed = errors.New("component type is not allowed for die type")
)

// DieType groups die designs and lists the component types they are made of.
//
// Invariants:
//   - code is required, upper case and unique (enforced by storage)
//   - a component type is listed at most once
//   - a die type without listed component types accepts any component type
type DieType struct {
	id               kernel.UUID
	code             string
	name             string
	description      string
	isActive         bool
	componentTypeIDs []kernel.UUID
	isConstructed    bool
}

// NewDieType creates an active die type without component types.
func NewDieType(id kernel.UUID, code, name, description string) (*DieType, error) {
	dt := &DieType{
		description:      strings.TrimSpace(description),
		isActive:         true,
		componentTypeIDs: make([]kernel.UUID, 0),
		isConstructed:    true,
	}

	if err := errors.Join(
		dt.setID(id),
		dt.setCode(code),
		dt.setName(name),
	); err != nil {
		return nil, err
	}
	return dt, nil
}

// RestoreDieType rebuilds a die type and its component type list from persistence.
func RestoreDieType(
	id kernel.UUID,
	code, name, description string,
	isActive bool,
	componentTypeIDs []kernel.UUID,
) (*DieType, error) {
	dt, err := NewDieType(id, code, name, description)
	if err != nil {
		return nil, err
	}
	dt.isActive = isActive
	for _, typeID := range componentTypeIDs {
		if err = dt.AddComponentType(typeID); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

func (d *DieType) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDieTypeIsNotConstructed
	}
	return nil
}

func (d *DieType) ID() kernel.UUID     { return d.id }
func (d *DieType) Code() string        { return d.code }
func (d *DieType) Name() string        { return d.name }
func (d *DieType) Description() string { return d.description }
func (d *DieType) IsActive() bool      { return d.isActive }

// ComponentTypeIDs returns the listed component types in the order they were added.
func (d *DieType) ComponentTypeIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(d.componentTypeIDs))
	copy(out, d.componentTypeIDs)
	return out
}

// AddComponentType lists a component type for dies of this type.
func (d *DieType) AddComponentType(componentTypeID kernel.UUID) error {
	if err := componentTypeID.Validate(); err != nil {
		return err
	}
	if d.lists(componentTypeID) {
		return errs.NewDuplicateIdentifierError("die type component", componentTypeID.String())
	}
	d.componentTypeIDs = append(d.componentTypeIDs, componentTypeID)
	return nil
}

// RemoveComponentType unlists a component type. Dies that already carry a component of the
// type keep it.
func (d *DieType) RemoveComponentType(componentTypeID kernel.UUID) error {
	for i, listed := range d.componentTypeIDs {
		if listed.IsEqual(componentTypeID) {
			d.componentTypeIDs = append(d.componentTypeIDs[:i], d.componentTypeIDs[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("die type component", componentTypeID.String())
}

// CheckComponentType reports whether a die of this type may receive a component of the
// given type.
func (d *DieType) CheckComponentType(componentTypeID kernel.UUID) error {
	if len(d.componentTypeIDs) == 0 || d.lists(componentTypeID) {
		return nil
	}
	return fmt.Errorf("%w: %s does not list %s", ErrComponentTypeNotAllowed, d.code, componentTypeID)
}

// CheckAcceptsDies fails for retired die types.
func (d *DieType) CheckAcceptsDies() error {
	if !d.isActive {
		return fmt.Errorf("%w: %s", ErrDieTypeInactive, d.code)
	}
	return nil
}

// Deactivate retires the die type. Existing dies are not affected.
func (d *DieType) Deactivate() {
	d.isActive = false
}

func (d *DieType) lists(componentTypeID kernel.UUID) bool {
	for _, listed := range d.componentTypeIDs {
		if listed.IsEqual(componentTypeID) {
			return true
		}
	}
	return false
}

func (d *DieType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DieType) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > 50 {
		return errs.NewValueIsOutOfRangeErrorWithCause("code length", len(code), 1, 50, fmt.Errorf("code %q is too long", code))
	}
	d.code = strings.ToUpper(code)
	return nil
}

func (d *DieType) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
