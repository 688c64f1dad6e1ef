package problemgen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

var equationVariables = []string{"x", "y", "z"}

// GenerateEquations picks an integer solution for unknowns variables first
// and then derives equations that it satisfies exactly. One unknown gives
// a single equation with composite sides; two or three give a linear
// system with a non-zero determinant.
func GenerateEquations(rng *rand.Rand, unknowns int, level Level, maxAttempts int) (EquationSet, Unknowns) {
	level = level.Clamp()
	switch unknowns {
	case 2:
		return twoUnknowns(rng, level, maxAttempts)
	case 3:
		return threeUnknowns(rng, level, maxAttempts)
	default:
		return oneUnknown(rng, level, maxAttempts)
	}
}

// side is one side of a single-unknown equation.
type side struct {
	latex, text, expr string

	// slope of the side in x, as slopeNum/slopeDen.
	slopeNum, slopeDen int64
}

func constantSide(v int64) side {
	s := fmt.Sprintf("%d", v)
	return side{latex: s, text: s, expr: s, slopeNum: 0, slopeDen: 1}
}

// compositeSide returns one of a(x+b)+c, a(x+b)-c or (ax-b)/c+d built so
// that it evaluates to target at x = sol.
func compositeSide(rng *rand.Rand, sol, target, maxCoef, maxConst int64) side {
	switch rng.IntN(3) {
	case 0:
		a := intIn(rng, 1, maxCoef)
		c := intIn(rng, 1, max(maxConst/2, 1))
		b := int64(math.Round(float64(target-c)/float64(a))) - sol
		return scaledShift(a, b, target-a*(sol+b))
	case 1:
		a := intIn(rng, 1, maxCoef)
		c := intIn(rng, 1, max(maxConst/2, 1))
		b := int64(math.Round(float64(target+c)/float64(a))) - sol
		return scaledShift(a, b, target-a*(sol+b))
	default:
		a := intIn(rng, 1, maxCoef)
		c := intIn(rng, 2, max(maxCoef, 2))
		d := intIn(rng, 1, max(maxConst/3, 1))
		b := a*sol - c*(target-d)
		return quotientSide(a, b, c, d)
	}
}

// scaledShift renders a(x+b)+k.
func scaledShift(a, b, k int64) side {
	var latex, expr string
	switch {
	case b == 0:
		latex = formatLinear([]term{{a, "x"}}, false)
		expr = formatLinear([]term{{a, "x"}}, true)
	case a == 1:
		latex = "(" + formatLinear([]term{{1, "x"}, {b, ""}}, false) + ")"
		expr = latex
	default:
		inner := formatLinear([]term{{1, "x"}, {b, ""}}, false)
		latex = fmt.Sprintf("%d(%s)", a, inner)
		expr = fmt.Sprintf("%d*(%s)", a, inner)
	}
	latex += constantSuffix(k)
	expr += constantSuffix(k)
	return side{latex: latex, text: latex, expr: expr, slopeNum: a, slopeDen: 1}
}

// quotientSide renders (ax-b)/c+d.
func quotientSide(a, b, c, d int64) side {
	num := formatLinear([]term{{a, "x"}, {-b, ""}}, false)
	numExpr := formatLinear([]term{{a, "x"}, {-b, ""}}, true)
	suffix := constantSuffix(d)
	return side{
		latex:    fmt.Sprintf(`\frac{%s}{%d}%s`, num, c, suffix),
		text:     fmt.Sprintf("(%s)/%d%s", num, c, suffix),
		expr:     fmt.Sprintf("(%s)/%d%s", numExpr, c, suffix),
		slopeNum: a,
		slopeDen: c,
	}
}

func constantSuffix(k int64) string {
	switch {
	case k > 0:
		return fmt.Sprintf(" + %d", k)
	case k < 0:
		return fmt.Sprintf(" - %d", -k)
	}
	return ""
}

func sameSlope(l, r side) bool {
	return l.slopeNum*r.slopeDen == r.slopeNum*l.slopeDen
}

func equationOf(l, r side) Equation {
	return Equation{
		LaTeX: l.latex + " = " + r.latex,
		Text:  l.text + " = " + r.text,
		Left:  l.expr,
		Right: r.expr,
	}
}

func oneUnknown(rng *rand.Rand, level Level, maxAttempts int) (EquationSet, Unknowns) {
	maxCoef := []int64{5, 10, 20}[level-1]
	maxConst := []int64{20, 50, 100}[level-1]

	sol := intIn(rng, 1, 5*int64(level))
	target := intIn(rng, int64(level), maxConst)

	left := compositeSide(rng, sol, target, maxCoef, maxConst)
	right := constantSide(target)
	if coin(rng, 0.75) {
		// Both sides equal target at sol; differing slopes make sol the
		// only solution.
		right = attempt(maxAttempts,
			func() (side, bool) {
				s := compositeSide(rng, sol, target, maxCoef, maxConst)
				return s, !sameSlope(left, s)
			},
			func() side { return constantSide(target) })
	}

	return EquationSet{
		Equations: []Equation{equationOf(left, right)},
		Variables: []string{"x"},
	}, Unknowns{"x": float64(sol)}
}

// linearEquation renders sum(coefs[i]*vars[i]) = sum(coefs[i]*sol[i]).
func linearEquation(coefs, sol []int64) Equation {
	terms := make([]term, len(coefs))
	var rhs int64
	for i, c := range coefs {
		terms[i] = term{c, equationVariables[i]}
		rhs += c * sol[i]
	}
	left := formatLinear(terms, false)
	r := fmt.Sprintf("%d", rhs)
	return Equation{
		LaTeX: left + " = " + r,
		Text:  left + " = " + r,
		Left:  formatLinear(terms, true),
		Right: r,
	}
}

func systemOf(rows [][]int64, sol []int64) (EquationSet, Unknowns) {
	set := EquationSet{Variables: append([]string(nil), equationVariables[:len(sol)]...)}
	u := make(Unknowns, len(sol))
	for _, row := range rows {
		set.Equations = append(set.Equations, linearEquation(row, sol))
	}
	for i, v := range sol {
		u[equationVariables[i]] = float64(v)
	}
	return set, u
}

// levelCoef draws a coefficient in [1, m] at level 1 and [-m, m] above.
func levelCoef(rng *rand.Rand, level Level, m int64, minAtLevel1 int64) int64 {
	if level == 1 {
		return intIn(rng, minAtLevel1, m)
	}
	return intIn(rng, -m, m)
}

func twoUnknowns(rng *rand.Rand, level Level, maxAttempts int) (EquationSet, Unknowns) {
	m := []int64{5, 10, 15}[level-1]
	sol := []int64{intIn(rng, 1, 5*int64(level)), intIn(rng, 1, 5*int64(level))}

	draw := func() []int64 { return []int64{intIn(rng, 1, m), levelCoef(rng, level, m, 1)} }
	rows := attempt(maxAttempts,
		func() ([][]int64, bool) {
			r1, r2 := draw(), draw()
			return [][]int64{r1, r2}, r1[0]*r2[1] != r2[0]*r1[1]
		},
		func() [][]int64 {
			r1 := draw()
			return [][]int64{r1, {r1[0], r1[1] + 1}}
		})
	return systemOf(rows, sol)
}

func det3(r [][]int64) int64 {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

func threeUnknowns(rng *rand.Rand, level Level, maxAttempts int) (EquationSet, Unknowns) {
	m := []int64{3, 5, 8}[level-1]
	n := 3 * int64(level)
	sol := []int64{intIn(rng, 1, n), intIn(rng, 1, n), intIn(rng, 1, n)}

	rows := attempt(maxAttempts,
		func() ([][]int64, bool) {
			r := [][]int64{
				{intIn(rng, 1, m), levelCoef(rng, level, m, 0), levelCoef(rng, level, m, 0)},
				{intIn(rng, 1, m), intIn(rng, 1, m), levelCoef(rng, level, m, 0)},
				{intIn(rng, 1, m), levelCoef(rng, level, m, 0), intIn(rng, 1, m)},
			}
			return r, det3(r) != 0
		},
		func() [][]int64 {
			return [][]int64{{1, 1, 1}, {1, -1, 1}, {1, 1, -1}}
		})
	return systemOf(rows, sol)
}

// EquationGenerator serves KindEquation requests.
type EquationGenerator struct {
	config Config
}

func (g *EquationGenerator) Kind() Kind { return KindEquation }

func (g *EquationGenerator) Generate(rng *rand.Rand, req Request) *Problem {
	set, u := GenerateEquations(rng, req.Unknowns, req.Level, g.config.MaxAttempts)
	return &Problem{Kind: KindEquation, Level: req.Level, Payload: set, Answer: u}
}

// Fallback returns a fixed equation or system with solution x, y, z = 1, 2, 3.
func (g *EquationGenerator) Fallback(_ *rand.Rand, req Request) *Problem {
	var (
		set EquationSet
		u   Unknowns
	)
	switch req.Unknowns {
	case 2:
		set, u = systemOf([][]int64{{1, 1}, {1, -1}}, []int64{1, 2})
	case 3:
		set, u = systemOf([][]int64{{1, 1, 1}, {1, -1, 1}, {1, 1, -1}}, []int64{1, 2, 3})
	default:
		set = EquationSet{
			Equations: []Equation{equationOf(scaledShift(2, 1, 3), constantSide(7))},
			Variables: []string{"x"},
		}
		u = Unknowns{"x": 1}
	}
	return &Problem{Kind: KindEquation, Level: req.Level, Payload: set, Answer: u}
}
