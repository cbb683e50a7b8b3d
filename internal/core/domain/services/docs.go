// Package services provides domain services that orchestrate business operations
// across several aggregates of the die tracking domain. It implements the workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderNumberGenerator: derives human readable production and work order numbers
//   - WorkOrderExpander: fans a production order out into work orders and operations
//
// Services are pure: they never touch persistence. The application layer loads the
// aggregates, calls the service and saves the results in one unit of work.
package services
