// Released under an MIT license. See LICENSE.

// Package function provides the function value type.
//
// A function captures no environment. Identifiers in its body other than its
// parameters stay unresolved until the function is called or until global
// definitions are substituted into it.
package function

import (
	"strings"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/literal"
)

const name = "function"

// T (function) is a parameter list and an unevaluated body.
type T struct {
	body   cell.I
	params []string
}

type function = T

// New creates a function. Duplicate parameter names are not rejected.
func New(params []string, body cell.I) *T {
	p := make([]string, len(params))
	copy(p, params)

	return &function{body: body, params: p}
}

// Binds returns true if s is one of the parameters of f.
func (f *function) Binds(s string) bool {
	for _, p := range f.params {
		if p == s {
			return true
		}
	}

	return false
}

// Body returns the body of f.
func (f *function) Body() cell.I {
	return f.body
}

// Equal returns true if c is a function with the same parameters and an
// equal body.
func (f *function) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	g := To(c)
	if len(f.params) != len(g.params) {
		return false
	}

	for i, p := range f.params {
		if p != g.params[i] {
			return false
		}
	}

	return f.body.Equal(g.body)
}

// Literal returns the literal representation of the function f.
func (f *function) Literal() string {
	return "(lambda (" + strings.Join(f.params, " ") + ") " +
		literal.String(f.body) + ")"
}

// Name returns the type name for the function f.
func (f *function) Name() string {
	return name
}

// Params returns the parameter names of f. It must not be modified.
func (f *function) Params() []string {
	return f.params
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if f, ok := c.(*T); ok {
		return f
	}

	panic("not a " + name)
}
