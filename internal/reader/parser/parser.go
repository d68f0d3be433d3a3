// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for scheme source text.
//
// The parser builds one expression tree per top-level form. An opening
// parenthesis starts a list that ends at its matching closing parenthesis;
// any other token becomes an atom. Unbalanced input is reported as an error.
package parser

import (
	"errors"
	"fmt"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/struct/token"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/atom"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
)

// Errors returned by Parse, wrapped with the offending location.
var (
	ErrUnclosed   = errors.New("unclosed '('")
	ErrUnexpected = errors.New("unexpected ')'")
)

// T holds the state of the parser.
type T struct {
	depth int             // Lists currently open.
	emit  func(cell.I)    // Function to call to emit a parsed form.
	item  func() *token.T // Function to call to get another token.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Depth returns the number of lists opened but not yet closed.
func (p *T) Depth() int {
	return p.depth
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It stops at the first unbalanced parenthesis.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		f, ok := r.(*failure)
		if !ok {
			panic(r)
		}

		p.depth = 0
		err = f.err
	}()

	for t := p.item(); t != nil; t = p.item() {
		switch {
		case t.Is('('):
			p.emit(p.list(t))
		case t.Is(')'):
			p.fail(t, ErrUnexpected)
		default:
			p.emit(atom.Token(t))
		}
	}

	return nil
}

type failure struct {
	err error
}

func (p *T) fail(t *token.T, err error) {
	panic(&failure{err: fmt.Errorf("%s: %w", t.Source(), err)})
}

// <list> ::= '(' (<atom> | <list>)* ')' .
func (p *T) list(open *token.T) cell.I {
	p.depth++

	var elements []cell.I

	for {
		t := p.item()

		switch {
		case t == nil:
			p.fail(open, ErrUnclosed)
		case t.Is(')'):
			p.depth--

			return list.New(elements...)
		case t.Is('('):
			elements = append(elements, p.list(t))
		default:
			elements = append(elements, atom.Token(t))
		}
	}
}
