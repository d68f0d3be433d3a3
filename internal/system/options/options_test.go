package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func check(t *testing.T, argv []string, tty bool) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	if err := parse(p, argv, tty); err != nil {
		t.Fatal(err)
	}
}

func TestCommand(t *testing.T) {
	check(t, []string{"-c", `(+ 1 2)\n(* 2 3)`}, true)

	if Command() != "(+ 1 2)\n(* 2 3)" {
		t.Fatalf("Expected escapes to be expanded; got %q", Command())
	}

	if Interactive() {
		t.Fatal("Expected a command to disable interactive mode")
	}
}

func TestExplain(t *testing.T) {
	check(t, []string{"-x", "a.scm"}, false)

	if !Explain() {
		t.Fatal("Expected -x to enable explanations")
	}
}

func TestFiles(t *testing.T) {
	check(t, []string{"a.scm", "b.scm"}, true)

	files := Files()
	if len(files) != 2 || files[0] != "a.scm" || files[1] != "b.scm" {
		t.Fatalf("Expected [a.scm b.scm]; got %v", files)
	}

	if Interactive() {
		t.Fatal("Expected files to disable interactive mode")
	}
}

func TestInteractive(t *testing.T) {
	for _, c := range []struct {
		argv     []string
		tty      bool
		expected bool
	}{
		{[]string{}, true, true},
		{[]string{}, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
		{[]string{"-s"}, false, false},
		{[]string{"-s"}, true, false},
		{[]string{"-i", "-s"}, true, true},
	} {
		check(t, c.argv, c.tty)

		if Interactive() != c.expected {
			t.Fatalf("%v (tty %v): expected interactive %v", c.argv, c.tty, c.expected)
		}
	}
}

func TestVersion(t *testing.T) {
	check(t, []string{"-v"}, false)

	if !PrintVersion() {
		t.Fatal("Expected -v to request the version")
	}
}

func TestUsageError(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	if err := parse(p, []string{"-c"}, false); err == nil {
		t.Fatal("Expected -c without a command to fail")
	}
}
