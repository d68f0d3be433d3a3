// Released under an MIT license. See LICENSE.

// Package engine provides the top-level driver for evaluating scheme forms.
//
// The engine owns the table of global definitions. Each top-level form is
// either a definition, which extends the table, or an expression whose value
// is written out. A form that comes back deferred has the known definitions
// of its free names substituted into it and is evaluated again, for as long
// as one of those names has a value. In batch mode a form that is still
// deferred waits, in order, and is retried after each later definition;
// anything still waiting when the engine is closed is reported as an error.
package engine

import (
	"fmt"
	"io"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/literal"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/boolean"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/deferred"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/errstr"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/function"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
	"github.com/cinnamonbacon/schemeInterpreter/internal/engine/eval"
)

// T (engine) is a facade in front of the machinery for evaluating forms.
type T struct {
	explain     func(reason string)
	interactive bool
	names       []string          // Defined names, in definition order.
	output      io.Writer         // Where results are written.
	pending     []cell.I          // Results not yet written, in order.
	table       map[string]cell.I // Global definitions.
	werr        error             // First error writing output.
}

// New creates a new T that writes results to w, one per line.
func New(w io.Writer) *T {
	return &T{
		output: w,
		table:  map[string]cell.I{},
	}
}

// Close writes any results still waiting on a definition, as errors.
// It returns the first error encountered writing output.
func (e *T) Close() error {
	for i, v := range e.pending {
		if deferred.Is(v) {
			e.pending[i] = unresolved(v)
		}
	}

	e.flush()

	return e.werr
}

// Evaluate processes the top-level form c.
func (e *T) Evaluate(c cell.I) {
	if l, ok := definition(c); ok {
		e.define(l)
		e.retry()
	} else {
		e.queue(e.resolve(eval.Eval(c)))
	}

	e.flush()
}

// Explain sets a function to be called with the reason for each error
// written out.
func (e *T) Explain(f func(reason string)) {
	e.explain = f
}

// Interactive sets whether results are written as soon as each form is
// evaluated. An interactive engine reports a deferred result as an error
// immediately rather than waiting for later definitions.
func (e *T) Interactive(b bool) {
	e.interactive = b
}

// Lookup returns the value defined for name, if any.
func (e *T) Lookup(name string) (cell.I, bool) {
	v, ok := e.table[name]

	return v, ok
}

// Names returns the defined names in the order they were first defined.
func (e *T) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)

	return names
}

// Run evaluates each of the forms and then closes the engine.
func (e *T) Run(forms *list.T) error {
	for _, c := range forms.Elements() {
		e.Evaluate(c)
	}

	return e.Close()
}

func definition(c cell.I) (*list.T, bool) {
	if !list.Is(c) {
		return nil, false
	}

	l := list.To(c)

	return l, atom.IsNamed(l.Head(), eval.Define)
}

// (define name expression) or (define (name params...) body)
func (e *T) define(l *list.T) {
	args := l.Tail()
	if len(args) != 2 {
		e.queue(errstr.Errorf("define: expected 2 arguments, passed %d", len(args)))
		return
	}

	target, body := args[0], args[1]

	switch {
	case eval.Identifier(target):
		name := atom.To(target).String()
		if fault := reserved(name); fault != nil {
			e.queue(fault)
			return
		}

		e.set(name, e.resolve(eval.Eval(body)))
	case list.Is(target) && list.To(target).Len() > 0:
		head := list.To(target).Head()
		if !eval.Identifier(head) {
			e.queue(errstr.New("define: function name must be an identifier"))
			return
		}

		if fault := reserved(atom.To(head).String()); fault != nil {
			e.queue(fault)
			return
		}

		params, fault := eval.Params(list.New(list.To(target).Tail()...))
		if fault != nil {
			e.queue(fault)
			return
		}

		e.set(atom.To(head).String(), function.New(params, body))
	default:
		e.queue(errstr.New("define: expected an identifier or a function signature"))
	}
}

func (e *T) flush() {
	for len(e.pending) > 0 && !deferred.Is(e.pending[0]) {
		e.write(e.pending[0])
		e.pending = e.pending[1:]
	}
}

func (e *T) queue(v cell.I) {
	if e.interactive && deferred.Is(v) {
		v = unresolved(v)
	}

	e.pending = append(e.pending, v)
}

// resolve substitutes the known definitions into the deferred value v and
// evaluates the result, until it is no longer deferred or none of the names
// it is waiting on has a value.
func (e *T) resolve(v cell.I) cell.I {
	for deferred.Is(v) {
		x := deferred.To(v).Expr()

		y, ok := e.substitute(x)
		if !ok {
			break
		}

		v = eval.Eval(y)
	}

	return v
}

// retry resolves deferred definitions and waiting results against the
// current table.
func (e *T) retry() {
	for progress := true; progress; {
		progress = false

		for _, name := range e.names {
			v := e.table[name]
			if !deferred.Is(v) {
				continue
			}

			r := e.resolve(v)
			if !r.Equal(v) {
				e.table[name] = r
				progress = true
			}
		}
	}

	for i, v := range e.pending {
		if deferred.Is(v) {
			e.pending[i] = e.resolve(v)
		}
	}
}

func (e *T) set(name string, v cell.I) {
	if _, ok := e.table[name]; !ok {
		e.names = append(e.names, name)
	}

	if errstr.Is(v) {
		e.reason(name + ": " + errstr.To(v).Reason())
	}

	e.table[name] = v
}

// substitute binds each free name in c that has a value. It returns false
// if there was nothing to bind.
func (e *T) substitute(c cell.I) (cell.I, bool) {
	ok := false

	for _, name := range eval.Free(c) {
		v, defined := e.table[name]
		if !defined || deferred.Is(v) {
			continue
		}

		c = eval.Bind(c, name, v)
		ok = true
	}

	return c, ok
}

func (e *T) reason(s string) {
	if e.explain != nil {
		e.explain(s)
	}
}

func (e *T) write(v cell.I) {
	var s string

	switch {
	case num.Is(v), boolean.Is(v):
		s = common.String(v)
	case errstr.Is(v):
		e.reason(errstr.To(v).Reason())

		s = common.String(v)
	default:
		// Functions and deferred expressions are not written.
		return
	}

	if _, err := fmt.Fprintln(e.output, s); err != nil && e.werr == nil {
		e.werr = err
	}
}

func reserved(name string) *errstr.T {
	switch {
	case eval.IsKeyword(name):
		return errstr.Errorf("define: %s is a keyword", name)
	case eval.IsPrimitive(name):
		return errstr.Errorf("define: %s is a built-in function", name)
	}

	return nil
}

func unresolved(v cell.I) cell.I {
	return errstr.New("unresolved: " + literal.String(deferred.To(v).Expr()))
}
