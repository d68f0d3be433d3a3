// Released under an MIT license. See LICENSE.

// Package bound provides the expression type for a slot that already holds
// a value. Bound cells are only ever created by substitution.
package bound

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/literal"
)

const name = "bound"

// T (bound) wraps a concrete value in expression position.
type T struct {
	value cell.I
}

type bound = T

// New creates a bound cell holding v.
func New(v cell.I) *T {
	return &bound{value: v}
}

// Equal returns true if c is a bound cell holding an equal value.
func (b *bound) Equal(c cell.I) bool {
	return Is(c) && b.value.Equal(To(c).value)
}

// Literal returns the literal representation of the value held by b.
func (b *bound) Literal() string {
	return literal.String(b.value)
}

// Name returns the type name for the bound cell b.
func (b *bound) Name() string {
	return name
}

// Value returns the value held by b.
func (b *bound) Value() cell.I {
	return b.value
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}
