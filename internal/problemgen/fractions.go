package problemgen

import (
	"math/rand/v2"

	"github.com/abhisek/mathdrill/internal/fraction"
)

// fractionRange holds the per-level bounds for fraction problems.
type fractionRange struct {
	upper, lower [2]int
	den, num     [2]int64
}

var fractionRanges = map[Level]fractionRange{
	1: {upper: [2]int{1, 2}, lower: [2]int{0, 1}, den: [2]int64{2, 20}, num: [2]int64{1, 5}},
	2: {upper: [2]int{1, 2}, lower: [2]int{1, 2}, den: [2]int64{2, 20}, num: [2]int64{1, 10}},
	3: {upper: [2]int{1, 2}, lower: [2]int{1, 2}, den: [2]int64{2, 30}, num: [2]int64{1, 15}},
}

// GenerateFraction builds a fraction problem. methodWeight is the
// probability of forward construction; otherwise the problem is built
// backward from a chosen result. Above level 1, half of all problems are a
// plain subtraction of two fractions instead. Forward construction is
// retried up to maxAttempts times if its lower sum is zero.
func GenerateFraction(rng *rand.Rand, level Level, methodWeight float64, maxAttempts int) (FractionExpression, Solution) {
	level = level.Clamp()
	r := fractionRanges[level]

	var e FractionExpression
	switch {
	case level > 1 && coin(rng, 0.5):
		e = subtractionFractions(rng)
	case coin(rng, methodWeight):
		e = attempt(maxAttempts,
			func() (FractionExpression, bool) { return forwardFractions(rng, r) },
			func() FractionExpression { return backwardFractions(rng, r) })
	default:
		e = backwardFractions(rng, r)
	}

	res, err := e.Result()
	if err != nil {
		// Unreachable: every construction above has a non-zero lower sum.
		e = fallbackFractions()
		res, _ = e.Result()
	}
	return e, FractionSolution(res)
}

// FractionSolution returns the Solution for an exact value.
func FractionSolution(f fraction.Fraction) Solution {
	f = f.Simplify()
	sol := Solution{Decimal: f.Value(), Exact: f.String()}
	if f.Denominator == 1 {
		v := f.Signed()
		sol.Integer = &v
	}
	return sol
}

func randomFraction(rng *rand.Rand, r fractionRange) fraction.Fraction {
	return fraction.Fraction{
		Numerator:   intIn(rng, r.num[0], r.num[1]),
		Denominator: intIn(rng, r.den[0], r.den[1]),
		Sign:        randSign(rng),
	}
}

// forwardFractions draws every term at random. It reports false when the
// lower sum is zero.
func forwardFractions(rng *rand.Rand, r fractionRange) (FractionExpression, bool) {
	up := int(intIn(rng, int64(r.upper[0]), int64(r.upper[1])))
	down := int(intIn(rng, int64(r.lower[0]), int64(r.lower[1])))

	e := FractionExpression{Upper: make([]fraction.Fraction, up)}
	for i := range e.Upper {
		e.Upper[i] = randomFraction(rng, r)
	}
	if down > 0 {
		e.Lower = make([]fraction.Fraction, down)
		for i := range e.Lower {
			e.Lower[i] = randomFraction(rng, r)
		}
	}
	if _, err := e.Result(); err != nil {
		return FractionExpression{}, false
	}
	return e, true
}

// backwardFractions picks a reduced result sign*N/D first and decomposes it.
// With lower terms, N is split across the upper terms and D across the
// lower ones, each part shown as part*k/k. Without, N is split into parts
// p each shown as p*k/(D*k), which sum to N/D.
func backwardFractions(rng *rand.Rand, r fractionRange) FractionExpression {
	target := fraction.New(intIn(rng, 1, 100), intIn(rng, 1, 100)).Simplify()
	sign := int64(randSign(rng))
	num, den := target.Numerator, target.Denominator

	up := int(intIn(rng, int64(r.upper[0]), int64(r.upper[1])))
	down := int(intIn(rng, int64(r.lower[0]), int64(r.lower[1])))

	if down == 0 {
		parts := signedParts(rng, num, up)
		upper := make([]fraction.Fraction, len(parts))
		for i, p := range parts {
			k := intIn(rng, 1, 3)
			upper[i] = fraction.New(sign*p*k, den*k)
		}
		return FractionExpression{Upper: upper}
	}

	asFractions := func(parts []int64, sign int64) []fraction.Fraction {
		out := make([]fraction.Fraction, len(parts))
		for i, p := range parts {
			k := intIn(rng, r.den[0], r.den[1])
			out[i] = fraction.New(sign*p*k, k)
		}
		return out
	}
	return FractionExpression{
		Upper: asFractions(signedParts(rng, num, up), sign),
		Lower: asFractions(signedParts(rng, den, down), 1),
	}
}

// signedParts splits n >= 1 into count non-zero integers summing to n.
// Parts are positive, except that with more than one part a random part
// may be negated and twice its magnitude added to a sibling, which keeps
// the sum.
func signedParts(rng *rand.Rand, n int64, count int) []int64 {
	if int64(count) > n {
		count = int(n)
	}
	parts := partition(rng, n, count)
	rng.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
	if len(parts) > 1 && coin(rng, 0.5) {
		i := rng.IntN(len(parts))
		j := (i + 1 + rng.IntN(len(parts)-1)) % len(parts)
		parts[j] += 2 * parts[i]
		parts[i] = -parts[i]
	}
	return parts
}

// subtractionFractions returns a/5 - b/4 with both terms reducing to
// integers.
func subtractionFractions(rng *rand.Rand) FractionExpression {
	return FractionExpression{Upper: []fraction.Fraction{
		{Numerator: intIn(rng, 10, 50) * 5, Denominator: 5, Sign: 1},
		{Numerator: intIn(rng, 5, 30) * 4, Denominator: 4, Sign: -1},
	}}
}

// fallbackFractions is 1/2 + 1/3.
func fallbackFractions() FractionExpression {
	return FractionExpression{Upper: []fraction.Fraction{fraction.New(1, 2), fraction.New(1, 3)}}
}

// FractionGenerator serves KindFraction requests.
type FractionGenerator struct {
	config Config
}

func (g *FractionGenerator) Kind() Kind { return KindFraction }

func (g *FractionGenerator) Generate(rng *rand.Rand, req Request) *Problem {
	e, sol := GenerateFraction(rng, req.Level, g.config.FractionMethodWeight, g.config.MaxAttempts)
	return &Problem{Kind: KindFraction, Level: req.Level, Payload: e, Answer: sol}
}

func (g *FractionGenerator) Fallback(_ *rand.Rand, req Request) *Problem {
	e := fallbackFractions()
	res, _ := e.Result()
	return &Problem{Kind: KindFraction, Level: req.Level, Payload: e, Answer: FractionSolution(res)}
}
