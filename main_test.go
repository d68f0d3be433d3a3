package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/parser"
)

func TestInput(t *testing.T) {
	var b bytes.Buffer

	err := evaluate("test", `
(define (square n) (* n n))
(define (sum-of-squares a b)
  (+ (square a) (square b)))
(sum-of-squares 3 4)
(if (number=? (sum-of-squares 3 4) 25) (- 1) 1)
(square)
`, &b)
	if err != nil {
		t.Fatal(err)
	}

	if b.String() != "25\n-1\nError\n" {
		t.Fatalf("Unexpected output %q", b.String())
	}
}

func TestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.scm")
	if err := os.WriteFile(path, []byte("(define x 5) (+ x 1)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := source(path, &b); err != nil {
		t.Fatal(err)
	}

	if b.String() != "6\n" {
		t.Fatalf("Unexpected output %q", b.String())
	}
}

func TestSourceMissing(t *testing.T) {
	err := source(filepath.Join(t.TempDir(), "missing.scm"), &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected %v; got %v", os.ErrNotExist, err)
	}
}

func TestUnbalanced(t *testing.T) {
	var b bytes.Buffer

	err := evaluate("test", "(+ 1 2)\n(+ 1", &b)
	if !errors.Is(err, parser.ErrUnclosed) {
		t.Fatalf("Expected %v; got %v", parser.ErrUnclosed, err)
	}

	if b.Len() != 0 {
		t.Fatalf("Expected nothing to be evaluated; got %q", b.String())
	}
}
