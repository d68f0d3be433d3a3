// Released under an MIT license. See LICENSE.

// Package atom provides the identifier/literal expression type.
package atom

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/struct/token"
)

const name = "atom"

// T (atom) wraps the raw text of an atom. Whether it is a numeral or an
// identifier is decided by the evaluator, not the reader.
type T string

type atom = T

// New creates an atom from the text v.
func New(v string) *T {
	a := atom(v)

	return &a
}

// Token creates an atom from the text of the token t.
func Token(t *token.T) *T {
	return New(t.Value())
}

// Equal returns true if c is an atom with the same text.
func (a *atom) Equal(c cell.I) bool {
	return Is(c) && *a == *To(c)
}

// Literal returns the literal representation of the atom a.
func (a *atom) Literal() string {
	return string(*a)
}

// Name returns the type name for the atom a.
func (a *atom) Name() string {
	return name
}

// String returns the text of the atom a.
func (a *atom) String() string {
	return string(*a)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// IsNamed returns true if c is an atom whose text is s.
func IsNamed(c cell.I, s string) bool {
	return Is(c) && To(c).String() == s
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if a, ok := c.(*T); ok {
		return a
	}

	panic("not an " + name)
}
