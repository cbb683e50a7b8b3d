// Package workorder provides the WorkOrder aggregate and its sequenced operations.
//
// A work order is created for one die component when a production order is expanded. Its
// operations are snapshots of the component type's BOM and follow a strict sequence: an
// operation can only start once every operation with a lower sequence number is Completed.
//
// Transitions return a Transition value describing the required work center side effect.
// The application layer applies it to the workcenter aggregate in the same unit of work.
package workorder
