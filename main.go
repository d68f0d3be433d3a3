/*
Scheme evaluates a small Scheme-like language with exact rational arithmetic.

	(define (square n) (* n n))
	(square 4)
	(if (number=? 1 1) 10 (undefined-name))

Only +, -, *, number=?, if, cond, lambda and top-level define exist.
Identifiers are resolved by substitution rather than by an environment, so a
form may refer to a name that is only defined further down the file. One
line is printed for each form that is not a definition: a number, true or
false, or Error.

Scheme is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cinnamonbacon/schemeInterpreter/internal/engine"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader"
	"github.com/cinnamonbacon/schemeInterpreter/internal/system/options"
	"github.com/cinnamonbacon/schemeInterpreter/internal/ui"
)

func main() {
	if err := options.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if options.PrintVersion() {
		fmt.Println(options.Version)
		return
	}

	os.Exit(run())
}

func run() int {
	switch {
	case options.Command() != "":
		return status(evaluate("command", options.Command(), os.Stdout))
	case len(options.Files()) > 0:
		code := 0

		for _, path := range options.Files() {
			err := source(path, os.Stdout)
			if err != nil {
				fmt.Printf("Error (%v) running file: %s\n", err, path)

				code = 1
			}
		}

		return code
	case options.Interactive():
		e := create("scheme", os.Stdout)
		e.Interactive(true)

		err := ui.Run(e)
		if cerr := e.Close(); err == nil {
			err = cerr
		}

		return status(err)
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return status(err)
	}

	return status(evaluate("stdin", string(b), os.Stdout))
}

func create(label string, w io.Writer) *engine.T {
	e := engine.New(w)

	if options.Explain() {
		e.Explain(func(reason string) {
			fmt.Fprintln(os.Stderr, label+": "+reason)
		})
	}

	return e
}

// evaluate reads every form in text and then evaluates them in order with
// a fresh set of definitions.
func evaluate(label, text string, w io.Writer) error {
	forms, err := reader.Read(label, text)
	if err != nil {
		return err
	}

	return create(label, w).Run(forms)
}

func source(path string, w io.Writer) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return evaluate(path, string(b), w)
}

func status(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
