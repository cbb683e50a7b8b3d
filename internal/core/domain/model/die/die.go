package die

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var (
	ErrDieIsNotConstructed = errors.New("Die must be created via NewDie constructor")

	// dieNumberPattern keeps die numbers printable inside order numbers and URLs.
	dieNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

// Die is a physical tooling design and the aggregate root of its components.
//
// Invariants:
//   - die number is required and unique (enforced by storage); it may contain hyphens,
//     order numbers are derived by prefix and never split on the die number
//   - every die belongs to a die type
//   - components keep their creation order (position 1..N)
//   - a component type appears at most once per die
//   - components can be added only before production starts
type Die struct {
	id              kernel.UUID
	dieTypeID       kernel.UUID
	dieNumber       string
	diameterMm      float64
	packageLengthMm float64
	status          Status
	components      []*Component
	isConstructed   bool
}

// NewDie creates a Draft die without components.
//
// Example:
//
//	d, err := die.NewDie(kernel.NewUUID(), hollowDieTypeID, "1100", 250, 120)
//	if err != nil {
//	    return err
//	}
//	_, err = d.AddComponent(kernel.NewUUID(), mandrelTypeID, h13StockID, 120, 14.5)
func NewDie(id, dieTypeID kernel.UUID, dieNumber string, diameterMm, packageLengthMm float64) (*Die, error) {
	d := &Die{
		status:        Draft,
		components:    make([]*Component, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDieTypeID(dieTypeID),
		d.setDieNumber(dieNumber),
		d.setDimensions(diameterMm, packageLengthMm),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDie rebuilds a die and its components from persistence.
func RestoreDie(
	id, dieTypeID kernel.UUID,
	dieNumber string,
	diameterMm, packageLengthMm float64,
	status Status,
	components []*Component,
) (*Die, error) {
	d, err := NewDie(id, dieTypeID, dieNumber, diameterMm, packageLengthMm)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, c := range components {
		if err = c.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.components = append(d.components, components...)
	d.sortComponents()
	return d, nil
}

func (d *Die) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDieIsNotConstructed
	}
	return nil
}

func (d *Die) ID() kernel.UUID          { return d.id }
func (d *Die) DieTypeID() kernel.UUID   { return d.dieTypeID }
func (d *Die) DieNumber() string        { return d.dieNumber }
func (d *Die) DiameterMm() float64      { return d.diameterMm }
func (d *Die) PackageLengthMm() float64 { return d.packageLengthMm }
func (d *Die) Status() Status           { return d.status }

// Components returns the components in creation order.
func (d *Die) Components() []*Component {
	out := make([]*Component, len(d.components))
	copy(out, d.components)
	return out
}

// AddComponent appends a component at the next position. stockItemID names the bar stock
// the component is machined from.
func (d *Die) AddComponent(
	id, componentTypeID, stockItemID kernel.UUID,
	packageLengthMm, theoreticalConsumptionKg float64,
) (*Component, error) {
	if !d.status.AcceptsComponents() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"die status",
			fmt.Errorf("components cannot be added to a die in %s status", d.status),
		)
	}
	for _, existing := range d.components {
		if existing.ID().IsEqual(id) {
			return nil, errs.NewDuplicateIdentifierError("component", id.String())
		}
		if existing.ComponentTypeID().IsEqual(componentTypeID) {
			return nil, errs.NewDuplicateIdentifierError("component type", componentTypeID.String())
		}
	}

	c, err := NewComponent(
		id, componentTypeID, stockItemID, packageLengthMm, theoreticalConsumptionKg, d.nextPosition(),
	)
	if err != nil {
		return nil, err
	}
	d.components = append(d.components, c)
	return c, nil
}

// StartProduction is called when a production order of the die is expanded.
func (d *Die) StartProduction() error {
	next, err := d.status.StartProduction()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

// ChangeStatus applies an operator requested lifecycle change.
func (d *Die) ChangeStatus(target Status) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Die) nextPosition() int {
	highest := 0
	for _, c := range d.components {
		if c.Position() > highest {
			highest = c.Position()
		}
	}
	return highest + 1
}

func (d *Die) sortComponents() {
	sort.SliceStable(d.components, func(i, j int) bool {
		return d.components[i].Position() < d.components[j].Position()
	})
}

func (d *Die) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Die) setDieTypeID(dieTypeID kernel.UUID) error {
	if err := dieTypeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("die type", err)
	}
	d.dieTypeID = dieTypeID
	return nil
}

func (d *Die) setDieNumber(dieNumber string) error {
	dieNumber = strings.TrimSpace(dieNumber)
	if dieNumber == "" {
		return errs.NewValueIsRequiredError("die number")
	}
	if !dieNumberPattern.MatchString(dieNumber) {
		return errs.NewValueIsInvalidErrorWithCause(
			"die number",
			fmt.Errorf("%q may only contain letters, digits, '.', '_' and '-' and must start with a letter or digit", dieNumber),
		)
	}
	d.dieNumber = dieNumber
	return nil
}

func (d *Die) setDimensions(diameterMm, packageLengthMm float64) error {
	if diameterMm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("die diameter", fmt.Errorf("%v is negative", diameterMm))
	}
	if packageLengthMm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("package length", fmt.Errorf("%v is negative", packageLengthMm))
	}
	if err := errors.Join(
		kernel.ValidateMm("die diameter", diameterMm),
		kernel.ValidateMm("package length", packageLengthMm),
	); err != nil {
		return err
	}
	d.diameterMm = diameterMm
	d.packageLengthMm = packageLengthMm
	return nil
}
