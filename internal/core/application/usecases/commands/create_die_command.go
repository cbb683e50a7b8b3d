package commands

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
	"dietrack/internal/pkg/guard"
)

var ErrCreateDieCommandIsNotConstructed = errors.New(
	"CreateDieCommand must be created via NewCreateDieCommand constructor",
)

// CreateDieCommand registers a new die design in Draft status.
//
// Example:
//
//	dieID := kernel.NewUUID()
//	cmd, err := NewCreateDieCommand(dieID, hollowDieTypeID, "1100", 250, 120)
//	if err != nil {
//	    return fmt.Errorf("invalid die data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create die: %w", err)
//	}
type CreateDieCommand struct { //nolint:recvcheck //using for validation
	dieID           kernel.UUID
	dieTypeID       kernel.UUID
	dieNumber       string
	diameterMm      float64
	packageLengthMm float64

	guard guard.ConstructorGuard
}

// NewCreateDieCommand validates the identifiers and the die number. Dimension rules are
// enforced by the die aggregate.
func NewCreateDieCommand(
	dieID, dieTypeID kernel.UUID,
	dieNumber string,
	diameterMm, packageLengthMm float64,
) (CreateDieCommand, error) {
	cmd := CreateDieCommand{
		diameterMm:      diameterMm,
		packageLengthMm: packageLengthMm,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDieID(dieID),
		cmd.setDieTypeID(dieTypeID),
		cmd.setDieNumber(dieNumber),
	); err != nil {
		return CreateDieCommand{}, err
	}
	return cmd, nil
}

func (c CreateDieCommand) Validate() error {
	return c.guard.Validate(ErrCreateDieCommandIsNotConstructed)
}

func (c CreateDieCommand) DieID() kernel.UUID       { return c.dieID }
func (c CreateDieCommand) DieTypeID() kernel.UUID   { return c.dieTypeID }
func (c CreateDieCommand) DieNumber() string        { return c.dieNumber }
func (c CreateDieCommand) DiameterMm() float64      { return c.diameterMm }
func (c CreateDieCommand) PackageLengthMm() float64 { return c.packageLengthMm }

func (c *CreateDieCommand) setDieID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dieID = id
	return nil
}

func (c *CreateDieCommand) setDieTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("die type", err)
	}
	c.dieTypeID = id
	return nil
}

func (c *CreateDieCommand) setDieNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("die number")
	}
	c.dieNumber = number
	return nil
}
