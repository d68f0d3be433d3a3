// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/adapted"
)

// Version is printed by -v.
const Version = "0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	explain     bool
	files       []string
	interactive bool
	version     bool
	usage       = `scheme

Usage:
  scheme [-x] FILE...
  scheme [-x] -c COMMAND
  scheme [-ix] [-s]
  scheme -h
  scheme -v

Arguments:
  FILE  Path to a source file. Each file is evaluated with its own definitions.

Options:
  -c, --command=COMMAND  Evaluate COMMAND. Escape sequences are expanded.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read all of stdin as one program, even from a TTY.
  -x, --explain          Print the reason for each Error to stderr.
  -h, --help             Display this help.
  -v, --version          Print scheme version.

If stdin is a TTY and scheme was invoked with no FILE, COMMAND or -s,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the text passed with -c, with escape sequences expanded.
func Command() string {
	return command
}

// Explain returns true if Error reasons should be printed.
func Explain() bool {
	return explain
}

// Files returns the source files named on the command line.
func Files() []string {
	return files
}

// Interactive returns true if forms should be read from a line editor.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Parse exits after printing help or a usage error.
func Parse() error {
	return parse(&docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// PrintVersion returns true if the version should be printed.
func PrintVersion() bool {
	return version
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}

	command, explain, files, interactive, version = "", false, nil, false, false

	if c, _ := opts.String("--command"); c != "" {
		command, err = adapted.ActualBytes(c)
		if err != nil {
			return err
		}
	}

	files, _ = opts["FILE"].([]string)

	stdin, _ := opts.Bool("--stdin")
	if command == "" && len(files) == 0 && !stdin {
		interactive = tty
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	explain, _ = opts.Bool("--explain")
	version, _ = opts.Bool("--version")

	return nil
}
