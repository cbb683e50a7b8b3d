// Package inventory tracks the steel stock catalogue, the lots delivered for each stock item
// and the stock movements that draw from them.
package inventory
