// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all expression and value types.
package cell

// I (cell) is the basic unit of storage. Expression nodes produced by the
// reader and values produced by the evaluator are both cells.
type I interface {
	Equal(c I) bool
	Name() string
}
