// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/boolean"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/deferred"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/errstr"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/function"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/validate"
)

// Special form keywords.
const (
	Cond   = "cond"
	Define = "define"
	If     = "if"
	Lambda = "lambda"
)

type form func(l *list.T) cell.I

// Keywords returns the names that cannot be defined.
func Keywords() []string {
	return []string{Cond, Define, If, Lambda}
}

// IsKeyword returns true if s is a special form keyword.
func IsKeyword(s string) bool {
	for _, k := range Keywords() {
		if k == s {
			return true
		}
	}

	return false
}

func syntax(head cell.I) (form, bool) {
	if !atom.Is(head) {
		return nil, false
	}

	switch atom.To(head).String() {
	case Cond:
		return cond, true
	case If:
		return conditional, true
	case Lambda:
		return lambda, true
	}

	return nil, false
}

// test evaluates the condition at position i in l. Unless the result is a
// boolean, done is true and v is the value of the whole form l.
func test(l *list.T, i int) (b bool, v cell.I, done bool) {
	r := Eval(l.Elements()[i])

	switch {
	case boolean.Is(r):
		return boolean.To(r).Bool(), nil, false
	case deferred.Is(r):
		return false, hold(l, i, r, nil), true
	case errstr.Is(r):
		return false, r, true
	}

	return false, errstr.Errorf("condition is a %s, not a boolean", r.Name()), true
}

// (cond c1 r1 c2 r2 ...)
func cond(l *list.T) cell.I {
	pairs := l.Tail()
	if len(pairs)%2 != 0 {
		return errstr.Errorf("cond: expected condition/result pairs, passed %d forms", len(pairs))
	}

	for i := 0; i < len(pairs); i += 2 {
		b, v, done := test(l, i+1)
		if done {
			return v
		}

		if b {
			return Eval(pairs[i+1])
		}
	}

	return errstr.New("cond: no condition was true")
}

// (if condition consequent alternative)
func conditional(l *list.T) cell.I {
	args := l.Tail()
	if e := validate.Fixed(If, args, 3); e != nil {
		return e
	}

	b, v, done := test(l, 1)
	if done {
		return v
	}

	if b {
		return Eval(args[1])
	}

	return Eval(args[2])
}

// (lambda (params...) body)
func lambda(l *list.T) cell.I {
	args := l.Tail()
	if e := validate.Fixed(Lambda, args, 2); e != nil {
		return e
	}

	params, e := Params(args[0])
	if e != nil {
		return e
	}

	return function.New(params, args[1])
}

// Params returns the names in the parameter list c. Each element of c must
// be an identifier.
func Params(c cell.I) ([]string, *errstr.T) {
	if !list.Is(c) {
		return nil, errstr.Errorf("parameters must be a list, not a %s", c.Name())
	}

	elements := list.To(c).Elements()
	params := make([]string, len(elements))

	for i, p := range elements {
		if !Identifier(p) {
			return nil, errstr.Errorf("parameter %d is not an identifier", i+1)
		}

		params[i] = atom.To(p).String()
	}

	return params, nil
}

// Identifier returns true if c is an atom that is not a numeric literal.
func Identifier(c cell.I) bool {
	if !atom.Is(c) {
		return false
	}

	_, ok := num.Parse(atom.To(c).String())

	return !ok
}
