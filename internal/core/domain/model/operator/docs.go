// Package operator provides the Operator aggregate: a shop floor worker identified by an
// RFID badge and qualified for a set of work centers.
package operator
