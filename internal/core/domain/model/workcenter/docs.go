// Package workcenter models the production resources operations run on.
//
// A work center is Available, Busy while an operation is in progress on it, or
// UnderMaintenance. Busy is only ever set through Occupy by the operation state machine.
package workcenter
