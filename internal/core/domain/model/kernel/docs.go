// Package kernel provides the primitives shared by every aggregate of the die tracking domain.
//
// The package includes:
//   - UUID: the identifier value object used for dies, orders, operations, lots and work centers
//   - OrderStatus: the lifecycle shared by production orders and work orders
//   - quantity rules: weights and lengths carry at most three decimals
//
// UUID and OrderStatus are immutable values; constructors and parsers reject zero and unknown values so that
// domain code never has to re-check them.
package kernel
