package queries

import (
	"errors"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/guard"
)

var ErrListDieTypesQueryIsNotConstructed = errors.New(
	"ListDieTypesQuery must be created via NewListDieTypesQuery constructor",
)

// ListDieTypesQuery lists die types by code with the component types each one lists.
// Retired die types are skipped unless includeInactive is set.
type ListDieTypesQuery struct {
	includeInactive bool

	guard guard.ConstructorGuard
}

func NewListDieTypesQuery(includeInactive bool) (ListDieTypesQuery, error) {
	return ListDieTypesQuery{includeInactive: includeInactive, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDieTypesQuery) Validate() error {
	return q.guard.Validate(ErrListDieTypesQueryIsNotConstructed)
}

func (q ListDieTypesQuery) IncludeInactive() bool { return q.includeInactive }

// DieTypeView is one die type of the catalogue.
type DieTypeView struct {
	ID             kernel.UUID
	Code           string
	Name           string
	Description    string
	IsActive       bool
	ComponentTypes []ComponentTypeRef
}

// ComponentTypeRef names a component type in listing order.
type ComponentTypeRef struct {
	ID   kernel.UUID
	Code string
	Name string
}
