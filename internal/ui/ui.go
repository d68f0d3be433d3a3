// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for evaluating scheme forms.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/struct/token"
	"github.com/cinnamonbacon/schemeInterpreter/internal/engine/eval"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/lexer"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/parser"
	"github.com/cinnamonbacon/schemeInterpreter/internal/system/history"
	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(c cell.I)
	Names() []string
}

const (
	prompt       = "> "
	continuation = "| "
)

// Run reads forms from the terminal and sends them to the Evaluator until
// end of input.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
	}

	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e, line, pos)
	})

	done := false

	for !done {
		aborted := false

		l := lexer.New("scheme")

		var p *parser.T

		p = parser.New(e.Evaluate, func() *token.T {
			for {
				t := l.Token()
				if t != nil || done {
					return t
				}

				s := prompt
				if p.Depth() > 0 {
					s = continuation
				}

				line, err := cli.Prompt(s)

				switch {
				case err == nil:
					cli.AppendHistory(line)
				case errors.Is(err, liner.ErrPromptAborted):
					aborted = true

					return nil
				default:
					// End of input. Finish any atom in progress.
					done = true

					l.Close()

					return l.Token()
				}

				l.Scan(line + "\n")
			}
		})

		err := p.Parse()

		switch {
		case aborted:
			fmt.Println()
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
		}
	}

	return history.Save(cli.WriteHistory)
}

// complete offers defined names, keywords and primitives that start with
// the word before the cursor.
func complete(e Evaluator, line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexAny(head, "() \t") + 1
	word := head[start:]

	if word == "" {
		return head, nil, tail
	}

	pattern := glob(word) + "*"

	var cs []string

	names := append(append(e.Names(), eval.Keywords()...), eval.Primitives()...)
	for _, n := range names {
		if ok, err := adapted.Match(pattern, n); err == nil && ok && n != word {
			cs = append(cs, n)
		}
	}

	return head[:start], cs, tail
}

// glob escapes the pattern characters in s.
func glob(s string) string {
	var b strings.Builder

	for _, r := range s {
		if strings.ContainsRune(`*?[\`, r) {
			b.WriteRune('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}
