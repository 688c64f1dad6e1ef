package problemgen

import (
	"math/rand/v2"
	"slices"
)

var polynomialRanges = map[Level]int64{1: 5, 2: 8, 3: 10}

// GeneratePolynomial expands (a1 x + b1)(a2 x + b2) with coefficients in
// the level's range and keeps it only when both roots are integers. After
// maxAttempts rejected draws it returns a monic product (x - p)(x - q).
func GeneratePolynomial(rng *rand.Rand, level Level, maxAttempts int) (QuadraticForm, Roots) {
	r := polynomialRanges[level.Clamp()]
	nonZero := func() int64 {
		if v := intIn(rng, -r, r); v != 0 {
			return v
		}
		return int64(randSign(rng))
	}

	type result struct {
		q     QuadraticForm
		roots Roots
	}
	res := attempt(maxAttempts,
		func() (result, bool) {
			a1, b1 := nonZero(), intIn(rng, -r, r)
			a2, b2 := nonZero(), intIn(rng, -r, r)
			q := expand(a1, b1, a2, b2)
			roots, ok := IntegerRoots(q)
			return result{q, roots}, ok
		},
		func() result {
			p, q := intIn(rng, -r, r), intIn(rng, -r, r)
			return result{expand(1, -p, 1, -q), sortedRoots(p, q)}
		})
	return res.q, res.roots
}

// expand multiplies out (a1 x + b1)(a2 x + b2), normalized to A > 0.
func expand(a1, b1, a2, b2 int64) QuadraticForm {
	q := QuadraticForm{A: a1 * a2, B: a1*b2 + a2*b1, C: b1 * b2}
	if q.A < 0 {
		q = QuadraticForm{A: -q.A, B: -q.B, C: -q.C}
	}
	return q
}

// IntegerRoots returns both roots of q in ascending order when the
// discriminant is a perfect square and both roots are integers.
func IntegerRoots(q QuadraticForm) (Roots, bool) {
	if q.A == 0 {
		return nil, false
	}
	disc := q.B*q.B - 4*q.A*q.C
	if disc < 0 {
		return nil, false
	}
	s := isqrt(disc)
	if s*s != disc {
		return nil, false
	}
	den := 2 * q.A
	n1, n2 := -q.B-s, -q.B+s
	if n1%den != 0 || n2%den != 0 {
		return nil, false
	}
	return sortedRoots(n1/den, n2/den), true
}

func sortedRoots(p, q int64) Roots {
	r := Roots{p, q}
	slices.Sort(r)
	return r
}

func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// PolynomialGenerator serves KindPolynomial requests.
type PolynomialGenerator struct {
	config Config
}

func (g *PolynomialGenerator) Kind() Kind { return KindPolynomial }

func (g *PolynomialGenerator) Generate(rng *rand.Rand, req Request) *Problem {
	q, roots := GeneratePolynomial(rng, req.Level, g.config.MaxAttempts)
	return &Problem{Kind: KindPolynomial, Level: req.Level, Payload: q, Answer: roots}
}

// Fallback returns (x - 1)(x - 2).
func (g *PolynomialGenerator) Fallback(_ *rand.Rand, req Request) *Problem {
	return &Problem{Kind: KindPolynomial, Level: req.Level, Payload: expand(1, -1, 1, -2), Answer: Roots{1, 2}}
}
