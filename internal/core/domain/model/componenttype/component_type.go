package componenttype

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"
)

var ErrComponentTypeIsNotConstructed = errors.New("ComponentType must be created via NewComponentType constructor")

// ComponentType classifies die components and owns the ordered BOM every component
// of this type is manufactured with.
//
// Invariants:
//   - code is required and unique (enforced by storage)
//   - sequence numbers are unique inside the BOM
//   - BOM() is always ordered by sequence number ascending
type ComponentType struct {
	id            kernel.UUID
	code          string
	name          string
	isActive      bool
	steps         []Step
	isConstructed bool
}

// NewComponentType creates an active component type with an empty BOM.
func NewComponentType(id kernel.UUID, code, name string) (*ComponentType, error) {
	ct := &ComponentType{
		isActive:      true,
		steps:         make([]Step, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		ct.setID(id),
		ct.setCode(code),
		ct.setName(name),
	); err != nil {
		return nil, err
	}
	return ct, nil
}

// RestoreComponentType rebuilds a component type and its BOM from persistence.
func RestoreComponentType(id kernel.UUID, code, name string, isActive bool, steps []Step) (*ComponentType, error) {
	ct, err := NewComponentType(id, code, name)
	if err != nil {
		return nil, err
	}
	ct.isActive = isActive
	for _, step := range steps {
		if err = ct.AddStep(step); err != nil {
			return nil, err
		}
	}
	return ct, nil
}

func (c *ComponentType) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComponentTypeIsNotConstructed
	}
	return nil
}

func (c *ComponentType) ID() kernel.UUID { return c.id }
func (c *ComponentType) Code() string    { return c.code }
func (c *ComponentType) Name() string    { return c.name }
func (c *ComponentType) IsActive() bool  { return c.isActive }

// BOM returns the steps ordered by sequence number.
func (c *ComponentType) BOM() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// AddStep inserts a step keeping the BOM ordered. Sequence numbers must be unique.
func (c *ComponentType) AddStep(step Step) error {
	if step.SequenceNumber() < 1 {
		return errs.NewValueIsRequiredError("bom step")
	}
	if _, ok := c.findStep(step.SequenceNumber()); ok {
		return errs.NewDuplicateIdentifierError("sequence number", step.SequenceNumber())
	}

	c.steps = append(c.steps, step)
	sort.SliceStable(c.steps, func(i, j int) bool {
		return c.steps[i].SequenceNumber() < c.steps[j].SequenceNumber()
	})
	return nil
}

// ReplaceStep overwrites the step with the same sequence number. Work orders that were
// already expanded keep their own copy and are not affected.
func (c *ComponentType) ReplaceStep(step Step) error {
	idx, ok := c.findStep(step.SequenceNumber())
	if !ok {
		return errs.NewObjectNotFoundError("bom step", step.SequenceNumber())
	}
	c.steps[idx] = step
	return nil
}

// RemoveStep deletes the step with the given sequence number.
func (c *ComponentType) RemoveStep(sequenceNumber int) error {
	idx, ok := c.findStep(sequenceNumber)
	if !ok {
		return errs.NewObjectNotFoundError("bom step", sequenceNumber)
	}
	c.steps = append(c.steps[:idx], c.steps[idx+1:]...)
	return nil
}

// Deactivate hides the type from new die designs. Its BOM remains usable.
func (c *ComponentType) Deactivate() {
	c.isActive = false
}

func (c *ComponentType) findStep(sequenceNumber int) (int, bool) {
	for i, s := range c.steps {
		if s.SequenceNumber() == sequenceNumber {
			return i, true
		}
	}
	return -1, false
}

func (c *ComponentType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *ComponentType) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > 50 {
		return errs.NewValueIsOutOfRangeErrorWithCause("code length", len(code), 1, 50, fmt.Errorf("code %q is too long", code))
	}
	c.code = strings.ToUpper(code)
	return nil
}

func (c *ComponentType) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
