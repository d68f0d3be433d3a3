package reader

import (
	"errors"
	"testing"

	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/parser"
)

func TestRead(t *testing.T) {
	forms, err := Read("test", "(define x 5)\n(+ x 1)")
	if err != nil {
		t.Fatal(err)
	}

	if forms.Len() != 2 {
		t.Fatalf("Expected 2 forms; got %d", forms.Len())
	}
}

func TestReadEmpty(t *testing.T) {
	forms, err := Read("test", " \n\t")
	if err != nil {
		t.Fatal(err)
	}

	if forms.Len() != 0 {
		t.Fatalf("Expected no forms; got %d", forms.Len())
	}
}

func TestReadUnbalanced(t *testing.T) {
	if _, err := Read("test", "(+ 1"); !errors.Is(err, parser.ErrUnclosed) {
		t.Fatalf("Expected %v; got %v", parser.ErrUnclosed, err)
	}
}
