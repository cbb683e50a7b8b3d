// Package productionorder provides the ProductionOrder aggregate: one build attempt of a die.
//
// A production order is created Waiting, moves to InProgress when it is expanded into work
// orders, and is completed or cancelled by an operator. Completion is not derived from the
// state of its operations.
package productionorder
