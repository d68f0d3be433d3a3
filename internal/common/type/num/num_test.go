package num

import (
	"math/big"
	"strings"
	"testing"
)

func rat(negative bool, n, d int64) *T {
	return New(negative, big.NewInt(n), big.NewInt(d))
}

func TestCanonical(t *testing.T) {
	for _, c := range []struct {
		n        *T
		expected string
	}{
		{rat(false, 2, 4), "1/2"},
		{rat(true, 3, 9), "-1/3"},
		{rat(true, 0, 7), "0"},
		{rat(false, 6, 3), "2"},
		{Int(-12), "-12"},
	} {
		if s := c.n.String(); s != c.expected {
			t.Fatalf("Expected %s; got %s", c.expected, s)
		}
	}

	z := rat(true, 0, 5)
	if z.Negative() || z.Den().Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("Expected canonical zero; got %s", z)
	}
}

func TestAdd(t *testing.T) {
	for _, c := range []struct {
		a, b     *T
		expected string
	}{
		{rat(false, 1, 2), rat(false, 1, 3), "5/6"},
		{rat(false, 1, 6), rat(false, 1, 3), "1/2"},
		{rat(true, 1, 2), rat(false, 1, 4), "-1/4"},
		{rat(false, 1, 2), rat(true, 1, 4), "1/4"},
		{rat(true, 1, 2), rat(true, 1, 2), "-1"},
		{Int(7), Zero(), "7"},
	} {
		if s := c.a.Add(c.b).String(); s != c.expected {
			t.Fatalf("%s + %s: expected %s; got %s", c.a, c.b, c.expected, s)
		}
	}
}

func TestAddInverse(t *testing.T) {
	for _, n := range []*T{rat(true, 3, 9), rat(false, 5, 12), Int(4)} {
		s := n.Add(n.Neg())
		if !s.Equal(Zero()) || s.Negative() || s.Num().Sign() != 0 {
			t.Fatalf("%s + -%s: expected 0; got %s", n, n, s)
		}
	}
}

func TestMul(t *testing.T) {
	p := rat(false, 2, 4).Mul(rat(false, 3, 6))
	if !p.Equal(rat(false, 1, 4)) {
		t.Fatalf("Expected 1/4; got %s", p)
	}

	if p.Num().Cmp(big.NewInt(1)) != 0 || p.Den().Cmp(big.NewInt(4)) != 0 {
		t.Fatalf("Expected 1/4 to be reduced; got %s/%s", p.Num(), p.Den())
	}

	if s := rat(true, 2, 3).Mul(rat(true, 3, 4)).String(); s != "1/2" {
		t.Fatalf("Expected 1/2; got %s", s)
	}

	if z := Int(-2).Mul(Zero()); z.Negative() {
		t.Fatalf("Expected positive zero; got %s", z)
	}

	n, _ := Parse("10000000000000000000")
	if s := n.Mul(n).String(); s != "1"+strings.Repeat("0", 38) {
		t.Fatalf("Expected 10^38; got %s", s)
	}
}

func TestParse(t *testing.T) {
	for _, c := range []struct {
		s        string
		expected string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"-0", "0"},
		{"007", "7"},
	} {
		n, ok := Parse(c.s)
		if !ok {
			t.Fatalf("Expected %q to parse", c.s)
		}

		if n.String() != c.expected {
			t.Fatalf("Expected %s; got %s", c.expected, n)
		}
	}

	for _, s := range []string{"", "-", "+5", "1a", "x", "1/2", "--1"} {
		if _, ok := Parse(s); ok {
			t.Fatalf("Expected %q not to parse", s)
		}
	}
}

func TestSub(t *testing.T) {
	if s := rat(false, 1, 2).Sub(rat(false, 3, 4)).String(); s != "-1/4" {
		t.Fatalf("Expected -1/4; got %s", s)
	}

	if s := Int(3).Sub(Int(3)); !s.Equal(Zero()) {
		t.Fatalf("Expected 0; got %s", s)
	}
}

func TestZeroShared(t *testing.T) {
	if Int(3).Sub(Int(3)) != Zero() || Int(0) != Zero() {
		t.Fatal("Expected every zero result to be the shared zero")
	}
}
