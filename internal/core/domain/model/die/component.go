package die

import (
	"errors"
	"fmt"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrComponentIsNotConstructed = errors.New("Component must be created via NewComponent constructor")

// Component is a material a die is built from. Each component becomes one work order
// when a production order of the die is expanded.
type Component struct {
	id                       kernel.UUID
	componentTypeID          kernel.UUID
	stockItemID              kernel.UUID
	packageLengthMm          float64
	theoreticalConsumptionKg float64
	position                 int
	isConstructed            bool
}

// NewComponent creates a component. position is the 1-based creation order inside the die.
func NewComponent(
	id, componentTypeID, stockItemID kernel.UUID,
	packageLengthMm float64,
	theoreticalConsumptionKg float64,
	position int,
) (*Component, error) {
	if err := errors.Join(id.Validate(), componentTypeID.Validate()); err != nil {
		return nil, err
	}
	if err := stockItemID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("stock item", err)
	}
	if packageLengthMm < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("package length", fmt.Errorf("%v is negative", packageLengthMm))
	}
	if theoreticalConsumptionKg < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"theoretical consumption",
			fmt.Errorf("%v is negative", theoreticalConsumptionKg),
		)
	}
	if err := errors.Join(
		kernel.ValidateMm("package length", packageLengthMm),
		kernel.ValidateKg("theoretical consumption", theoreticalConsumptionKg),
	); err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, errs.NewValueIsOutOfRangeError("position", position, 1, "unbounded")
	}

	return &Component{
		id:                       id,
		componentTypeID:          componentTypeID,
		stockItemID:              stockItemID,
		packageLengthMm:          packageLengthMm,
		theoreticalConsumptionKg: theoreticalConsumptionKg,
		position:                 position,
		isConstructed:            true,
	}, nil
}

func (c *Component) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComponentIsNotConstructed
	}
	return nil
}

func (c *Component) ID() kernel.UUID                   { return c.id }
func (c *Component) ComponentTypeID() kernel.UUID      { return c.componentTypeID }
func (c *Component) StockItemID() kernel.UUID          { return c.stockItemID }
func (c *Component) PackageLengthMm() float64          { return c.packageLengthMm }
func (c *Component) TheoreticalConsumptionKg() float64 { return c.theoreticalConsumptionKg }
func (c *Component) Position() int                     { return c.position }
