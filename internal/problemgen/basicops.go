package problemgen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathdrill/internal/fraction"
)

// basicOpsRange holds the per-level bounds for basic-ops problems.
type basicOpsRange struct {
	resultMax  int64
	maxSurplus int64
	minus      [2]int
	plus       [2]int
}

var basicOpsRanges = map[Level]basicOpsRange{
	1: {resultMax: 100, maxSurplus: 50, minus: [2]int{1, 3}, plus: [2]int{1, 3}},
	2: {resultMax: 500, maxSurplus: 250, minus: [2]int{1, 3}, plus: [2]int{1, 3}},
	3: {resultMax: 1000, maxSurplus: 500, minus: [2]int{1, 3}, plus: [2]int{1, 2}},
}

// BasicOpsOptions selects between the additive and multiplicative forms.
type BasicOpsOptions struct {
	AdditionAllowed      bool
	MultDivAllowed       bool
	AdditionWeight       float64
	MaxFactorDenominator int64
}

// GenerateBasicOps decomposes target into an additive or multiplicative
// expression whose value is exactly target.
func GenerateBasicOps(rng *rand.Rand, target int64, level Level, opts BasicOpsOptions) (Expression, Solution) {
	r := basicOpsRanges[level.Clamp()]

	additive := true
	switch {
	case opts.AdditionAllowed && opts.MultDivAllowed:
		additive = coin(rng, opts.AdditionWeight)
	case opts.MultDivAllowed:
		additive = false
	}

	if additive || target < 1 {
		return DecomposeAdditive(rng, target, r.maxSurplus, r.minus, r.plus), IntSolution(target)
	}
	maxDen := opts.MaxFactorDenominator
	if maxDen < 2 {
		maxDen = 2
	}
	return DecomposeFactors(rng, target, maxDen, 2, int(level.Clamp())+4), IntSolution(target)
}

// DecomposeAdditive writes total as plus parts minus minus parts. A surplus
// in [1, maxSurplus] is added to the plus side and split across the minus
// side, so the terms always sum to total.
func DecomposeAdditive(rng *rand.Rand, total, maxSurplus int64, minus, plus [2]int) AdditiveForm {
	surplus := intIn(rng, 1, max(maxSurplus, 1))
	// Keep the plus side positive for small or negative totals.
	if total+surplus < 1 {
		surplus = 1 - total
	}
	plusParts := partition(rng, total+surplus, int(intIn(rng, int64(plus[0]), int64(plus[1]))))
	minusParts := partition(rng, surplus, int(intIn(rng, int64(minus[0]), int64(minus[1]))))

	terms := make([]int64, 0, len(plusParts)+len(minusParts))
	terms = append(terms, plusParts...)
	for _, m := range minusParts {
		terms = append(terms, -m)
	}
	return AdditiveForm{Terms: terms}
}

// partition splits n >= 1 into at most count positive parts using count-1
// random cut points in [1, n-1]. Duplicate cuts are dropped, which yields
// fewer parts.
func partition(rng *rand.Rand, n int64, count int) []int64 {
	if count <= 1 || n <= 1 {
		return []int64{n}
	}
	cuts := []int64{n, 0}
	for range count - 1 {
		cuts = append(cuts, intIn(rng, 1, n-1))
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)
	slices.Reverse(cuts)

	parts := make([]int64, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		parts = append(parts, cuts[i]-cuts[i+1])
	}
	return parts
}

// DecomposeFactors writes total as a product of between minOps and maxOps
// operands by repeatedly splitting a random operand into two of its proper
// divisors. When no operand can be split further fewer operands are
// returned. Some operands are then shown as value*k/k with k in
// [2, maxDen], leaving the product unchanged.
func DecomposeFactors(rng *rand.Rand, total, maxDen int64, minOps, maxOps int) FactorForm {
	want := int(intIn(rng, int64(minOps), int64(maxOps)))
	ops := []int64{total}

	for len(ops) < want {
		var splittable []int
		for i, v := range ops {
			if len(properDivisors(v)) > 0 {
				splittable = append(splittable, i)
			}
		}
		if len(splittable) == 0 {
			break
		}
		i := splittable[rng.IntN(len(splittable))]
		v := ops[i]
		divs := properDivisors(v)
		d := divs[rng.IntN(len(divs))]
		ops[i] = d
		ops = slices.Insert(ops, i+1, v/d)
	}

	factors := make([]Factor, len(ops))
	for i, v := range ops {
		factors[i] = Factor{Value: v}
	}

	// A lone operand would render as a bare number, so it is always shown
	// as a fraction.
	n := 1
	if len(ops) > 1 {
		n = rng.IntN(len(ops))
	}
	for _, i := range rng.Perm(len(ops))[:n] {
		k := intIn(rng, 2, max(maxDen, 2))
		f := fraction.Fraction{Numerator: factors[i].Value * k, Denominator: k, Sign: 1}
		factors[i].Fraction = &f
	}
	return FactorForm{Factors: factors}
}

// properDivisors returns the divisors of v strictly between 1 and v.
func properDivisors(v int64) []int64 {
	var out []int64
	for d := int64(2); d*d <= v; d++ {
		if v%d != 0 {
			continue
		}
		out = append(out, d)
		if q := v / d; q != d {
			out = append(out, q)
		}
	}
	return out
}

// BasicOpsGenerator serves KindBasicOps requests.
type BasicOpsGenerator struct {
	config Config
}

func (g *BasicOpsGenerator) Kind() Kind { return KindBasicOps }

func (g *BasicOpsGenerator) target(rng *rand.Rand, req Request) int64 {
	if req.Target > 0 {
		return req.Target
	}
	r := basicOpsRanges[req.Level.Clamp()]
	return intIn(rng, g.config.MinResult, max(r.resultMax, g.config.MinResult))
}

func (g *BasicOpsGenerator) Generate(rng *rand.Rand, req Request) *Problem {
	payload, sol := GenerateBasicOps(rng, g.target(rng, req), req.Level, BasicOpsOptions{
		AdditionAllowed:      g.config.AdditionAllowed,
		MultDivAllowed:       g.config.MultDivAllowed,
		AdditionWeight:       g.config.AdditionWeight,
		MaxFactorDenominator: g.config.MaxFactorDenominator,
	})
	return &Problem{Kind: KindBasicOps, Level: req.Level, Payload: payload, Answer: sol}
}

// Fallback returns (target + 5L) - 5L.
func (g *BasicOpsGenerator) Fallback(rng *rand.Rand, req Request) *Problem {
	target := g.target(rng, req)
	off := 5 * int64(req.Level.Clamp())
	return &Problem{
		Kind:    KindBasicOps,
		Level:   req.Level,
		Payload: AdditiveForm{Terms: []int64{target + off, -off}},
		Answer:  IntSolution(target),
	}
}
