// Released under an MIT license. See LICENSE.

// Package deferred provides the value type for an expression that could not
// be reduced because it refers to an identifier with no known binding.
package deferred

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/literal"
)

const name = "deferred"

// T (deferred) holds the expression to retry once more is known.
type T struct {
	expr cell.I
}

type deferred = T

// New defers the expression e.
func New(e cell.I) *T {
	return &deferred{expr: e}
}

// Equal returns true if c is a deferred value holding an equal expression.
func (d *deferred) Equal(c cell.I) bool {
	return Is(c) && d.expr.Equal(To(c).expr)
}

// Expr returns the deferred expression.
func (d *deferred) Expr() cell.I {
	return d.expr
}

// Literal returns the literal representation of the deferred expression.
func (d *deferred) Literal() string {
	return literal.String(d.expr)
}

// Name returns the type name for the deferred value d.
func (d *deferred) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if d, ok := c.(*T); ok {
		return d
	}

	panic("not a " + name)
}
