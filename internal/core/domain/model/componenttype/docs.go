// Package componenttype provides the ComponentType aggregate and its bill of materials.
//
// A BOM is an ordered list of Step templates (operation name, preferred work center,
// duration estimate). Expanding a production order snapshots these steps by value into
// work order operations.
package componenttype
