// Package guard holds the constructor guard shared by commands, queries and value objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value is
// "not constructed", so a struct literal that skipped the constructor fails Validate.
//
// Example:
//
//	type ExpandProductionOrderCommand struct {
//	    productionOrderID kernel.UUID
//	    guard             guard.ConstructorGuard
//	}
//
//	func (c ExpandProductionOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrExpandProductionOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
