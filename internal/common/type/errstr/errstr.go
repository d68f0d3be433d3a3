// Released under an MIT license. See LICENSE.

// Package errstr provides the error value type.
package errstr

import (
	"fmt"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
)

const name = "error"

// T (errstr) is a terminal failure. The reason is for diagnostics only;
// every error is displayed the same way.
type T string

type errstr = T

// New creates a new errstr with the reason v.
func New(v string) *T {
	return (*T)(&v)
}

// Errorf creates a new errstr with a formatted reason.
func Errorf(format string, a ...interface{}) *T {
	return New(fmt.Sprintf(format, a...))
}

// Equal returns true if c is an errstr. All errors are equal.
func (e *errstr) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of the errstr e.
func (e *errstr) Literal() string {
	return e.String()
}

// Name returns the name of the errstr type.
func (e *errstr) Name() string {
	return name
}

// Reason returns the text describing what went wrong.
func (e *errstr) Reason() string {
	return string(*e)
}

// String returns the display text of the errstr e.
func (e *errstr) String() string {
	return "Error"
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.I) *T {
	if e, ok := c.(*T); ok {
		return e
	}

	panic("not an " + name)
}
