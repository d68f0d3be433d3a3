// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/bound"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/function"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
)

// Bind returns a copy of the expression c with every free occurrence of the
// identifier name replaced by a bound cell holding v. A function whose
// parameters include name is left as it is, as is an unevaluated lambda
// form that binds name.
func Bind(c cell.I, name string, v cell.I) cell.I {
	switch {
	case atom.Is(c):
		if atom.To(c).String() == name {
			return bound.New(v)
		}
	case list.Is(c):
		l := list.To(c)
		if shadows(l, name) {
			return l
		}

		return l.Map(func(e cell.I) cell.I {
			return Bind(e, name, v)
		})
	case bound.Is(c):
		w := bound.To(c).Value()
		if !function.Is(w) {
			break
		}

		f := function.To(w)
		if f.Binds(name) {
			break
		}

		return bound.New(function.New(f.Params(), Bind(f.Body(), name, v)))
	}

	return c
}

// shadows returns true if l is a lambda form with name as a parameter.
func shadows(l *list.T, name string) bool {
	params, ok := lambdaForm(l)
	if !ok {
		return false
	}

	for _, p := range params {
		if p == name {
			return true
		}
	}

	return false
}

// Free returns the identifiers that occur free in c, in order of first
// occurrence. Bound values are not searched; a name inside a bound function
// is only reached once that function is applied.
func Free(c cell.I) []string {
	var names []string

	seen := map[string]bool{}

	var walk func(c cell.I, shadowed map[string]bool)

	walk = func(c cell.I, shadowed map[string]bool) {
		switch {
		case Identifier(c):
			name := atom.To(c).String()
			if !shadowed[name] && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case list.Is(c):
			l := list.To(c)

			if params, ok := lambdaForm(l); ok {
				inner := make(map[string]bool, len(shadowed)+len(params))
				for k := range shadowed {
					inner[k] = true
				}

				for _, p := range params {
					inner[p] = true
				}

				walk(l.Elements()[2], inner)

				return
			}

			for _, e := range l.Elements() {
				walk(e, shadowed)
			}
		}
	}

	walk(c, nil)

	return names
}

// lambdaForm returns the parameters of l if l is a well-formed lambda form.
func lambdaForm(l *list.T) ([]string, bool) {
	if l.Len() != 3 || !atom.IsNamed(l.Head(), Lambda) {
		return nil, false
	}

	params, e := Params(l.Elements()[1])

	return params, e == nil
}
