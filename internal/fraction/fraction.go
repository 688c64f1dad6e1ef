// Package fraction implements exact rational arithmetic on small signed
// fractions: reduction, LCM-based summation and quotients of sums.
package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("fraction: divide by zero")

// Fraction is a signed rational number stored as a non-negative numerator,
// a positive denominator and a sign of +1 or -1. Values are immutable;
// every operation returns a new Fraction.
type Fraction struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
	Sign        int   `json:"sign"`
}

// Zero is the canonical zero fraction.
var Zero = Fraction{Numerator: 0, Denominator: 1, Sign: 1}

// New returns the unreduced fraction num/den. The sign is taken from the
// signs of both arguments, so New(-1, 2) and New(1, -2) are both -1/2.
// A zero denominator is kept as given; Simplify and Value report it as is.
func New(num, den int64) Fraction {
	sign := 1
	if num < 0 {
		sign = -sign
		num = -num
	}
	if den < 0 {
		sign = -sign
		den = -den
	}
	return Fraction{Numerator: num, Denominator: den, Sign: sign}
}

// Int returns v/1.
func Int(v int64) Fraction { return New(v, 1) }

// Simplify reduces f by the GCD of its terms. A negative numerator or
// denominator is folded into the sign, and zero becomes {0, 1, +1}.
func (f Fraction) Simplify() Fraction {
	sign := f.sign()
	num, den := f.Numerator, f.Denominator
	if num < 0 {
		num, sign = -num, -sign
	}
	if den < 0 {
		den, sign = -den, -sign
	}
	if num == 0 {
		return Zero
	}
	if den == 0 {
		return Fraction{Numerator: num, Denominator: 0, Sign: sign}
	}
	g := GCD(num, den)
	return Fraction{Numerator: num / g, Denominator: den / g, Sign: sign}
}

// sign treats an unset Sign as positive so the zero value is usable.
func (f Fraction) sign() int {
	if f.Sign < 0 {
		return -1
	}
	return 1
}

// Signed returns the numerator with the sign applied.
func (f Fraction) Signed() int64 { return int64(f.sign()) * f.Numerator }

// Value returns the real value of f.
func (f Fraction) Value() float64 {
	return float64(f.Signed()) / float64(f.Denominator)
}

// IsZero reports whether f has a zero numerator.
func (f Fraction) IsZero() bool { return f.Numerator == 0 }

// IsNegative reports whether f is strictly below zero.
func (f Fraction) IsNegative() bool { return f.Numerator != 0 && f.sign() < 0 }

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	f.Sign = 1
	return f
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	f.Sign = -f.sign()
	return f
}

// Equal reports whether f and g denote the same rational number.
func (f Fraction) Equal(g Fraction) bool {
	return f.Simplify() == g.Simplify()
}

// String renders the reduced form as "n/d", or "n" when the denominator is
// 1, with a leading "-" for negative values.
func (f Fraction) String() string {
	s := f.Simplify()
	if s.Denominator == 1 {
		return strconv.FormatInt(s.Signed(), 10)
	}
	return fmt.Sprintf("%d/%d", s.Signed(), s.Denominator)
}

// LaTeX renders f as written, without reducing it, e.g. `-\frac{6}{4}`.
func (f Fraction) LaTeX() string {
	var b strings.Builder
	if f.IsNegative() {
		b.WriteByte('-')
	}
	if f.Denominator == 1 {
		b.WriteString(strconv.FormatInt(f.Numerator, 10))
		return b.String()
	}
	fmt.Fprintf(&b, `\frac{%d}{%d}`, f.Numerator, f.Denominator)
	return b.String()
}

// Text renders f as written in plain text, e.g. "-6/4".
func (f Fraction) Text() string {
	if f.Denominator == 1 {
		return strconv.FormatInt(f.Signed(), 10)
	}
	return fmt.Sprintf("%d/%d", f.Signed(), f.Denominator)
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 1
// so it is always safe to divide by.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// CombineSum adds fractions over their least common denominator and
// returns the reduced result. The sum of an empty list is zero.
func CombineSum(fractions []Fraction) Fraction {
	l := int64(1)
	for _, f := range fractions {
		l = LCM(l, f.Denominator)
	}
	if l == 0 {
		return Fraction{Numerator: 0, Denominator: 0, Sign: 1}
	}
	var s int64
	for _, f := range fractions {
		s += f.Signed() * (l / f.Denominator)
	}
	return New(s, l).Simplify()
}

// Divide returns num / den reduced, with the sign being the product of the
// operand signs.
func Divide(num, den Fraction) (Fraction, error) {
	if den.Numerator == 0 {
		return Fraction{}, ErrDivideByZero
	}
	q := Fraction{
		Numerator:   num.Numerator * den.Denominator,
		Denominator: num.Denominator * den.Numerator,
		Sign:        num.sign() * den.sign(),
	}
	return q.Simplify(), nil
}

// Parse reads "n/d" or "n", where either part may carry a sign. Whitespace
// is allowed around each part but not inside a number. A zero denominator
// is rejected.
func Parse(s string) (Fraction, error) {
	numStr, denStr, hasSlash := strings.Cut(strings.TrimSpace(s), "/")
	numStr, denStr = strings.TrimSpace(numStr), strings.TrimSpace(denStr)
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: invalid numerator %q", numStr)
	}
	if !hasSlash {
		return Int(num), nil
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: invalid denominator %q", denStr)
	}
	if den == 0 {
		return Fraction{}, ErrDivideByZero
	}
	return New(num, den), nil
}
