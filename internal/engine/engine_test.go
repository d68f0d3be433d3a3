package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/function"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader"
)

const fact = "(define (fact n) (if (number=? n 0) 1 (* n (fact (- n 1))))) "

func run(t *testing.T, s string) string {
	t.Helper()

	forms, err := reader.Read("test", s)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := New(&b).Run(forms); err != nil {
		t.Fatal(err)
	}

	return b.String()
}

func lines(s ...string) string {
	if len(s) == 0 {
		return ""
	}

	return strings.Join(s, "\n") + "\n"
}

func TestOutput(t *testing.T) {
	for _, c := range []struct {
		name     string
		source   string
		expected string
	}{
		{"Sum", "(+ 1 2 3)", lines("6")},
		{"Sequence", "(* 2 3) (number=? 6 6)", lines("6", "true")},
		{"ShortCircuit", "(if (number=? 1 1) 10 (undefined-name))", lines("10")},
		{"Define", "(define x 5) (+ x 1)", lines("6")},
		{"ForwardReference", "(+ y 1) (define y 2) (* y 3)", lines("3", "6")},
		{"ForwardFunction", "(square 3) (define (square n) (* n n))", lines("9")},
		{"Square", "(define (square n) (* n n)) (square 4)", lines("16")},
		{"SquareNoArguments", "(define (square n) (* n n)) (square)", lines("Error")},
		{"SquareTwoArguments", "(define (square n) (* n n)) (square 1 2)", lines("Error")},
		{"EqualType", "(number=? 1 true)", lines("Error")},
		{"AddType", "(+ 1 true)", lines("Error")},
		{"Function", "(lambda (x) x)", lines()},
		{"FunctionValue", "(define sq (lambda (n) (* n n))) (sq 3)", lines("9")},
		{"Undefined", "(undefined 1) 5", lines("Error", "5")},
		{"Factorial", "(define (fact n) (if (number=? n 0) 1 (* n (fact (- n 1))))) (fact 5)", lines("120")},
		{"HigherOrder", "(define (twice f x) (f (f x))) (twice (lambda (n) (* n 2)) 3)", lines("12")},
		{"Cond", "(cond (number=? 1 2) 10 (number=? 2 2) 20)", lines("20")},
		{"DeferredDefinition", "(define a (+ b 1)) (define b 2) a", lines("3")},
		{"Redefinition", "(define x 1) (define x 2) x", lines("2")},
		{"KeywordDefinition", "(define if 1) (define + 5) (+ 1 2) (define (number=? a b) a) (number=? 1 1)",
			lines("Error", "Error", "3", "Error", "true")},
		{"UndefinedBesideRecursion", fact + "(+ undefined (fact 3))", lines("Error")},
		{"ForwardBesideRecursion", fact + "(+ y (fact 3)) (define y 1)", lines("7")},
		{"RecursionWaitingOnName", "(define (f n) (+ g (f n))) (f 1)", lines("Error")},
		{"FunctionWaitingOnName", "(define (f n) (+ g n)) (+ 1 (f 2)) (define g 5)", lines("8")},
		{"MalformedDefinition", "(define x) (define 1 2) (define () 3) (define (f 1) 4)", lines("Error", "Error", "Error", "Error")},
		{"Boolean", "(number=? 1 2)", lines("false")},
		{"Negative", "(- 2 5)", lines("-3")},
		{"Mutual", "(define (even n) (if (number=? n 0) (number=? 0 0) (odd (- n 1)))) " +
			"(define (odd n) (if (number=? n 0) (number=? 0 1) (even (- n 1)))) (even 4)", lines("true")},
	} {
		if actual := run(t, c.source); actual != c.expected {
			t.Errorf("%s: expected %q; got %q", c.name, c.expected, actual)
		}
	}
}

func TestDefinitions(t *testing.T) {
	forms, err := reader.Read("test", "(define x (* 2 3)) (define (f a b) (+ a b)) (define x 7)")
	if err != nil {
		t.Fatal(err)
	}

	e := New(&bytes.Buffer{})
	if err := e.Run(forms); err != nil {
		t.Fatal(err)
	}

	names := e.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "f" {
		t.Fatalf("Expected names [x f]; got %v", names)
	}

	if v, _ := e.Lookup("x"); !v.Equal(num.Int(7)) {
		t.Fatalf("Expected x to be 7; got %v", v)
	}

	if v, _ := e.Lookup("f"); !function.Is(v) {
		t.Fatalf("Expected f to be a function; got %v", v)
	}
}

func TestExplain(t *testing.T) {
	forms, err := reader.Read("test", "(+ 1 (lambda (x) x)) (nothing)")
	if err != nil {
		t.Fatal(err)
	}

	var reasons []string

	e := New(&bytes.Buffer{})
	e.Explain(func(reason string) {
		reasons = append(reasons, reason)
	})

	if err := e.Run(forms); err != nil {
		t.Fatal(err)
	}

	if len(reasons) != 2 {
		t.Fatalf("Expected 2 reasons; got %v", reasons)
	}

	if reasons[1] != "unresolved: (nothing)" {
		t.Fatalf("Expected the unresolved form to be named; got %q", reasons[1])
	}
}

func TestInteractive(t *testing.T) {
	var b bytes.Buffer

	e := New(&b)
	e.Interactive(true)

	for _, s := range []string{"(+ z 1)", "(define z 2)", "(+ z 1)"} {
		forms, err := reader.Read("test", s)
		if err != nil {
			t.Fatal(err)
		}

		e.Evaluate(forms.Head())
	}

	if err := e.Close(); err != nil {
		t.Fatal(err)
	}

	if b.String() != lines("Error", "3") {
		t.Fatalf("Expected %q; got %q", lines("Error", "3"), b.String())
	}
}

func TestOrderedOutput(t *testing.T) {
	var b bytes.Buffer

	e := New(&b)

	forms, err := reader.Read("test", "(+ w 1) 2")
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range forms.Elements() {
		e.Evaluate(c)
	}

	if b.Len() != 0 {
		t.Fatalf("Expected output to wait for w; got %q", b.String())
	}

	forms, err = reader.Read("test", "(define w 1)")
	if err != nil {
		t.Fatal(err)
	}

	e.Evaluate(forms.Head())

	if b.String() != lines("2", "2") {
		t.Fatalf("Expected %q; got %q", lines("2", "2"), b.String())
	}
}
