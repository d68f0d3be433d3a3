// Released under an MIT license. See LICENSE.

// Package list provides the list expression type. A list is the tree
// equivalent of a parenthesized form.
package list

import (
	"strings"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/literal"
)

const name = "list"

// T (list) is an ordered sequence of child expressions. It is never
// modified after it is created.
type T struct {
	elements []cell.I
}

type list = T

// New creates a new list composed of all of the elements in elements.
// The elements are copied so the caller may reuse the slice.
func New(elements ...cell.I) *T {
	l := &list{elements: make([]cell.I, len(elements))}

	copy(l.elements, elements)

	return l
}

// Elements returns the elements of the list l. It must not be modified.
func (l *list) Elements() []cell.I {
	return l.elements
}

// Equal returns true if c is a list whose elements are each equal to
// the corresponding element of l.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.elements) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Head returns the first element of the list l, or nil if l is empty.
func (l *list) Head() cell.I {
	if len(l.elements) == 0 {
		return nil
	}

	return l.elements[0]
}

// Len returns the number of elements in l.
func (l *list) Len() int {
	return len(l.elements)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = literal.String(e)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Map creates a new list by applying f to each element of l.
func (l *list) Map(f func(cell.I) cell.I) *T {
	m := &list{elements: make([]cell.I, len(l.elements))}

	for i, e := range l.elements {
		m.elements[i] = f(e)
	}

	return m
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	return name
}

// Tail returns all but the first element of l.
func (l *list) Tail() []cell.I {
	if len(l.elements) == 0 {
		return nil
	}

	return l.elements[1:]
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if l, ok := c.(*T); ok {
		return l
	}

	panic("not a " + name)
}
