// Package die provides the Die aggregate: a tooling design made of ordered components.
//
// The package includes:
//   - Die: the aggregate root carrying the die number used in every order number and the
//     die type it is an instance of
//   - Component: a material of the die cut from a steel stock item, expanded into one work
//     order per production order
//   - Status: Draft -> Waiting -> Ready -> InProduction -> Completed
//
// Component order is the creation order (position). Work order numbering depends on it,
// so restored dies are always sorted by position.
package die
