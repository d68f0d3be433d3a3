// Released under an MIT license. See LICENSE.

// Package num provides the exact rational number type.
//
// A number is kept as a sign and two unsigned magnitudes so that zero has a
// single representation. Every number is canonical: the denominator is
// positive, the numerator and denominator share no factor greater than one,
// and zero is always positive with a denominator of one.
package num

import (
	"math/big"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
)

const name = "number"

// T (num) is an exact rational.
type T struct {
	negative bool
	num      *big.Int
	den      *big.Int
}

type num = T

//nolint:gochecknoglobals
var (
	one  = big.NewInt(1)
	zero = &num{num: new(big.Int), den: one}
)

// New creates a canonical num from a sign and the magnitudes n and d.
// The magnitudes are not retained. A zero or negative d panics.
func New(negative bool, n, d *big.Int) *T {
	if d.Sign() <= 0 {
		panic("denominator must be positive")
	}

	a := new(big.Int).Abs(n)
	b := new(big.Int).Set(d)

	if a.Sign() == 0 {
		return zero
	}

	g := new(big.Int).GCD(nil, nil, a, b)
	if g.Cmp(one) != 0 {
		a.Quo(a, g)
		b.Quo(b, g)
	}

	return &num{negative: negative, num: a, den: b}
}

// Zero returns the number 0. Every zero result is this value.
func Zero() *T {
	return zero
}

// Int creates a num from the integer i.
func Int(i int64) *T {
	return New(i < 0, big.NewInt(i), one)
}

// Parse converts a numeric literal to a num. Numeric literals are an
// optional leading '-' followed by one or more decimal digits.
func Parse(s string) (*T, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}

	if digits == "" {
		return nil, false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, false
		}
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}

	return New(len(digits) != len(s), n, one), true
}

// Add returns n + m.
func (n *num) Add(m *T) *T {
	g := new(big.Int).GCD(nil, nil, n.den, m.den)

	// Least common denominator: d1*d2/gcd(d1, d2).
	lcd := new(big.Int).Mul(n.den, m.den)
	lcd.Quo(lcd, g)

	a := new(big.Int).Quo(lcd, n.den)
	a.Mul(a, n.num)

	b := new(big.Int).Quo(lcd, m.den)
	b.Mul(b, m.num)

	if n.negative == m.negative {
		return New(n.negative, a.Add(a, b), lcd)
	}

	// Signs differ: subtract the smaller magnitude from the larger and
	// keep the sign of the larger.
	if a.Cmp(b) >= 0 {
		return New(n.negative, a.Sub(a, b), lcd)
	}

	return New(m.negative, b.Sub(b, a), lcd)
}

// Den returns a copy of the denominator of n.
func (n *num) Den() *big.Int {
	return new(big.Int).Set(n.den)
}

// Equal returns true if c is a num with the same sign, numerator and
// denominator. As nums are canonical this is equality of rationals.
func (n *num) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	m := To(c)

	return n.negative == m.negative &&
		n.num.Cmp(m.num) == 0 &&
		n.den.Cmp(m.den) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Mul returns n * m.
func (n *num) Mul(m *T) *T {
	a := new(big.Int).Mul(n.num, m.num)
	b := new(big.Int).Mul(n.den, m.den)

	return New(n.negative != m.negative, a, b)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Neg returns -n.
func (n *num) Neg() *T {
	if n.num.Sign() == 0 {
		return n
	}

	return &num{negative: !n.negative, num: n.num, den: n.den}
}

// Negative returns true if n is less than zero.
func (n *num) Negative() bool {
	return n.negative
}

// Num returns a copy of the numerator magnitude of n.
func (n *num) Num() *big.Int {
	return new(big.Int).Set(n.num)
}

// String returns the text of the num n: an optional '-', the numerator
// and, unless n is an integer, '/' and the denominator.
func (n *num) String() string {
	s := n.num.String()
	if n.negative {
		s = "-" + s
	}

	if n.den.Cmp(one) != 0 {
		s += "/" + n.den.String()
	}

	return s
}

// Sub returns n - m.
func (n *num) Sub(m *T) *T {
	return n.Add(m.Neg())
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
