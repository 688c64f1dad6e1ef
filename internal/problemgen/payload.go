package problemgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/fraction"
)

// AdditiveForm is a sum of signed integer terms, rendered in order with
// negative terms shown as subtractions.
type AdditiveForm struct {
	Terms []int64 `json:"terms"`
}

func (AdditiveForm) form() string { return "additive" }

// Sum returns the sum of all terms.
func (f AdditiveForm) Sum() int64 {
	var s int64
	for _, t := range f.Terms {
		s += t
	}
	return s
}

// Plus returns the positive terms.
func (f AdditiveForm) Plus() []int64 {
	var out []int64
	for _, t := range f.Terms {
		if t >= 0 {
			out = append(out, t)
		}
	}
	return out
}

// Minus returns the magnitudes of the negative terms.
func (f AdditiveForm) Minus() []int64 {
	var out []int64
	for _, t := range f.Terms {
		if t < 0 {
			out = append(out, -t)
		}
	}
	return out
}

func (f AdditiveForm) render() string {
	var b strings.Builder
	for i, t := range f.Terms {
		switch {
		case i == 0:
			b.WriteString(strconv.FormatInt(t, 10))
		case t < 0:
			fmt.Fprintf(&b, " - %d", -t)
		default:
			fmt.Fprintf(&b, " + %d", t)
		}
	}
	return b.String()
}

func (f AdditiveForm) LaTeX() string { return f.render() }
func (f AdditiveForm) Text() string  { return f.render() }
func (f AdditiveForm) Expr() string  { return f.render() }

// Factor is one operand of a FactorForm. When Fraction is set the operand
// is shown as that (reducible) fraction, whose value equals Value.
type Factor struct {
	Value    int64              `json:"value"`
	Fraction *fraction.Fraction `json:"fraction,omitempty"`
}

// FactorForm is a product of integer operands.
type FactorForm struct {
	Factors []Factor `json:"factors"`
}

func (FactorForm) form() string { return "factor" }

// Product returns the product of the operand values.
func (f FactorForm) Product() int64 {
	p := int64(1)
	for _, x := range f.Factors {
		p *= x.Value
	}
	return p
}

// HasFractions reports whether any operand is shown as a fraction.
func (f FactorForm) HasFractions() bool {
	for _, x := range f.Factors {
		if x.Fraction != nil {
			return true
		}
	}
	return false
}

// LaTeX renders the product. When fraction operands are present the whole
// product becomes a single \frac of the numerator and denominator products.
func (f FactorForm) LaTeX() string {
	if !f.HasFractions() {
		parts := make([]string, len(f.Factors))
		for i, x := range f.Factors {
			parts[i] = strconv.FormatInt(x.Value, 10)
		}
		return strings.Join(parts, ` \cdot `)
	}
	var nums, dens []string
	for _, x := range f.Factors {
		if x.Fraction != nil {
			nums = append(nums, strconv.FormatInt(x.Fraction.Numerator, 10))
			dens = append(dens, strconv.FormatInt(x.Fraction.Denominator, 10))
			continue
		}
		nums = append(nums, strconv.FormatInt(x.Value, 10))
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, strings.Join(nums, ` \cdot `), strings.Join(dens, ` \cdot `))
}

func (f FactorForm) join(sep string) string {
	parts := make([]string, len(f.Factors))
	for i, x := range f.Factors {
		if x.Fraction != nil {
			parts[i] = "(" + x.Fraction.Text() + ")"
			continue
		}
		parts[i] = strconv.FormatInt(x.Value, 10)
	}
	return strings.Join(parts, sep)
}

func (f FactorForm) Text() string { return f.join(" × ") }
func (f FactorForm) Expr() string { return f.join(" * ") }

// FractionExpression is a sum of fractions, or a quotient of two sums when
// Lower is non-empty. Terms are kept unreduced as they are shown.
type FractionExpression struct {
	Upper []fraction.Fraction `json:"upper"`
	Lower []fraction.Fraction `json:"lower,omitempty"`
}

func (FractionExpression) form() string { return "fraction" }

// Result evaluates the expression exactly.
func (e FractionExpression) Result() (fraction.Fraction, error) {
	upper := fraction.CombineSum(e.Upper)
	if len(e.Lower) == 0 {
		return upper, nil
	}
	return fraction.Divide(upper, fraction.CombineSum(e.Lower))
}

func sumLaTeX(terms []fraction.Fraction) string {
	var b strings.Builder
	for i, f := range terms {
		switch {
		case i == 0:
			b.WriteString(f.LaTeX())
		case f.IsNegative():
			b.WriteString(" - " + f.Abs().LaTeX())
		default:
			b.WriteString(" + " + f.LaTeX())
		}
	}
	return b.String()
}

// sumText renders terms as "a/b + c/d"; paren wraps each term for the
// evaluator so that "1/2 / 3/4" can not be misread.
func sumText(terms []fraction.Fraction, paren bool) string {
	wrap := func(f fraction.Fraction) string {
		if paren {
			return "(" + f.Text() + ")"
		}
		return f.Text()
	}
	var b strings.Builder
	for i, f := range terms {
		switch {
		case i == 0 && f.IsNegative():
			b.WriteString("-" + wrap(f.Abs()))
		case i == 0:
			b.WriteString(wrap(f))
		case f.IsNegative():
			b.WriteString(" - " + wrap(f.Abs()))
		default:
			b.WriteString(" + " + wrap(f))
		}
	}
	return b.String()
}

func (e FractionExpression) LaTeX() string {
	if len(e.Lower) == 0 {
		return sumLaTeX(e.Upper)
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, sumLaTeX(e.Upper), sumLaTeX(e.Lower))
}

func (e FractionExpression) Text() string {
	if len(e.Lower) == 0 {
		return sumText(e.Upper, false)
	}
	return "(" + sumText(e.Upper, false) + ") ÷ (" + sumText(e.Lower, false) + ")"
}

func (e FractionExpression) Expr() string {
	if len(e.Lower) == 0 {
		return sumText(e.Upper, true)
	}
	return "(" + sumText(e.Upper, true) + ") / (" + sumText(e.Lower, true) + ")"
}

// Equation is one linear equation. Left and Right are in evaluator syntax
// with the variables x, y and z left symbolic, e.g. "2*(x+3)+4".
type Equation struct {
	LaTeX string `json:"latex"`
	Text  string `json:"text"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// EquationSet is a single equation or a system of equations.
type EquationSet struct {
	Equations []Equation `json:"equations"`
	Variables []string   `json:"variables"`
}

func (EquationSet) form() string { return "equations" }

func (s EquationSet) LaTeX() string {
	if len(s.Equations) == 1 {
		return s.Equations[0].LaTeX
	}
	parts := make([]string, len(s.Equations))
	for i, e := range s.Equations {
		parts[i] = e.LaTeX
	}
	return `\begin{cases} ` + strings.Join(parts, ` \\ `) + ` \end{cases}`
}

func (s EquationSet) Text() string {
	parts := make([]string, len(s.Equations))
	for i, e := range s.Equations {
		parts[i] = e.Text
	}
	return strings.Join(parts, "; ")
}

// QuadraticForm is A x^2 + B x + C = 0.
type QuadraticForm struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
	C int64 `json:"c"`
}

func (QuadraticForm) form() string { return "quadratic" }

// At evaluates the polynomial at x.
func (q QuadraticForm) At(x int64) int64 { return q.A*x*x + q.B*x + q.C }

func (q QuadraticForm) render(square string) string {
	s := formatLinear([]term{{q.A, square}, {q.B, "x"}, {q.C, ""}}, false)
	return s + " = 0"
}

func (q QuadraticForm) LaTeX() string { return q.render("x^{2}") }
func (q QuadraticForm) Text() string  { return q.render("x^2") }

// term is coef*name, or a constant when name is empty.
type term struct {
	coef int64
	name string
}

// formatLinear renders a signed sum of terms, skipping zero coefficients.
// Unit coefficients are omitted; explicit inserts "*" for the evaluator.
func formatLinear(terms []term, explicit bool) string {
	var b strings.Builder
	for _, t := range terms {
		if t.coef == 0 {
			continue
		}
		mag := t.coef
		if mag < 0 {
			mag = -mag
		}
		switch {
		case b.Len() == 0 && t.coef < 0:
			b.WriteString("-")
		case b.Len() == 0:
		case t.coef < 0:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		switch {
		case t.name == "":
			b.WriteString(strconv.FormatInt(mag, 10))
		case mag == 1:
			b.WriteString(t.name)
		case explicit:
			fmt.Fprintf(&b, "%d*%s", mag, t.name)
		default:
			fmt.Fprintf(&b, "%d%s", mag, t.name)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func sortedNames(u Unknowns) []string {
	names := make([]string, 0, len(u))
	for k := range u {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
