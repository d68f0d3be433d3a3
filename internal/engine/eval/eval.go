// Released under an MIT license. See LICENSE.

// Package eval reduces expression trees to values.
//
// There is no environment. A function call substitutes its arguments into
// the function body and evaluates the result. An identifier that nothing
// has been substituted for evaluates to a deferred value, and a form that
// depends on one is deferred as a whole so that it can be retried once the
// identifier is defined.
package eval

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/bound"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/deferred"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/errstr"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
)

// Eval reduces the expression c to a value. The result is a number, a
// boolean, a function, an error or a deferred expression.
func Eval(c cell.I) cell.I {
	switch {
	case atom.Is(c):
		if n, ok := num.Parse(atom.To(c).String()); ok {
			return n
		}

		return deferred.New(c)
	case bound.Is(c):
		return bound.To(c).Value()
	case list.Is(c):
		return combination(list.To(c))
	}

	return errstr.Errorf("cannot evaluate a %s", c.Name())
}

func combination(l *list.T) cell.I {
	if l.Len() == 0 {
		return errstr.New("empty combination")
	}

	if s, ok := syntax(l.Head()); ok {
		return s(l)
	}

	values := make([]cell.I, l.Len())

	for i, e := range l.Elements() {
		v := Eval(e)

		switch {
		case errstr.Is(v):
			return v
		case deferred.Is(v):
			// An unresolved name in operator position is left for
			// apply, which knows the primitives.
			if i == 0 && atom.Is(e) {
				break
			}

			return hold(l, i, v, values[:i])
		}

		values[i] = v
	}

	return apply(values[0], values[1:])
}

// hold defers l with its element at i replaced by what remains of the
// deferred value v, and the elements before i by their values. A name that
// is still waiting to be defined is never hidden inside a bound value.
func hold(l *list.T, i int, v cell.I, values []cell.I) cell.I {
	elements := make([]cell.I, l.Len())
	copy(elements, l.Elements())

	for j, w := range values {
		if !deferred.Is(w) {
			elements[j] = bound.New(w)
		}
	}

	elements[i] = deferred.To(v).Expr()

	return deferred.New(list.New(elements...))
}
