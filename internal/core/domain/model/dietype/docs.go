// Package dietype provides the DieType aggregate: a family of dies (hollow, solid, porthole)
// and the component types a die of the family is built from.
package dietype
