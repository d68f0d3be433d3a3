// Released under an MIT license. See LICENSE.

package eval

import (
	"sort"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/boolean"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/bound"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/deferred"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/errstr"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/function"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/validate"
)

type builtin func(args []cell.I) cell.I

//nolint:gochecknoglobals
var primitives = map[string]builtin{
	"*":        mul,
	"+":        add,
	"-":        sub,
	"number=?": equal,
}

// Primitives returns the names of the built-in functions in sorted order.
func Primitives() []string {
	names := make([]string, 0, len(primitives))
	for k := range primitives {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// IsPrimitive returns true if s names a built-in function.
func IsPrimitive(s string) bool {
	_, ok := primitives[s]

	return ok
}

// apply applies the operator op to args. An operator that is still an
// unresolved name, and is not a primitive, is quoted back into a call so
// that it can be retried once the name is defined.
func apply(op cell.I, args []cell.I) cell.I {
	switch {
	case deferred.Is(op):
		name := atom.To(deferred.To(op).Expr()).String()

		if b, ok := primitives[name]; ok {
			return b(args)
		}

		return deferred.New(call(name, args))
	case function.Is(op):
		return invoke(function.To(op), args)
	}

	return errstr.Errorf("a %s cannot be applied", op.Name())
}

func call(name string, args []cell.I) *list.T {
	elements := make([]cell.I, 0, len(args)+1)

	elements = append(elements, atom.New(name))
	for _, a := range args {
		elements = append(elements, bound.New(a))
	}

	return list.New(elements...)
}

func invoke(f *function.T, args []cell.I) cell.I {
	params := f.Params()

	if len(args) != len(params) {
		s := validate.Count(len(params), "argument", "s")
		return errstr.Errorf("function: expected %s, passed %d", s, len(args))
	}

	body := f.Body()
	for i, p := range params {
		body = Bind(body, p, args[i])
	}

	return Eval(body)
}

func add(args []cell.I) cell.I {
	ns, e := validate.Numbers("+", args)
	if e != nil {
		return e
	}

	sum := num.Zero()
	for _, n := range ns {
		sum = sum.Add(n)
	}

	return sum
}

func equal(args []cell.I) cell.I {
	if e := validate.Fixed("number=?", args, 2); e != nil {
		return e
	}

	ns, e := validate.Numbers("number=?", args)
	if e != nil {
		return e
	}

	return boolean.Bool(ns[0].Equal(ns[1]))
}

func mul(args []cell.I) cell.I {
	ns, e := validate.Numbers("*", args)
	if e != nil {
		return e
	}

	product := num.Int(1)
	for _, n := range ns {
		product = product.Mul(n)
	}

	return product
}

func sub(args []cell.I) cell.I {
	if e := validate.Minimum("-", args, 1); e != nil {
		return e
	}

	ns, e := validate.Numbers("-", args)
	if e != nil {
		return e
	}

	if len(ns) == 1 {
		return ns[0].Neg()
	}

	difference := ns[0]
	for _, n := range ns[1:] {
		difference = difference.Sub(n)
	}

	return difference
}
