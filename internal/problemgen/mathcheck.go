package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/expr"
)

// MathCheckValidator independently recomputes the answer from the payload:
// scalar payloads are re-evaluated with the expression evaluator, the
// stored unknowns are substituted into every equation, and polynomial
// roots are plugged back in.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem, _ Request) *ValidationError {
	if msg := recompute(p); msg != "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   msg,
			Retryable: true,
		}
	}
	return nil
}

// recompute returns a non-empty message when the payload does not produce
// the stored answer.
func recompute(p *Problem) string {
	switch a := p.Answer.(type) {
	case Solution:
		e, ok := p.Payload.(Expression)
		if !ok {
			return fmt.Sprintf("payload %T can not be evaluated", p.Payload)
		}
		got, err := expr.Evaluate(e.Expr())
		if err != nil {
			return fmt.Sprintf("evaluate %q: %v", e.Expr(), err)
		}
		if want := a.Value(); math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			return fmt.Sprintf("computed %v but answer is %v", got, want)
		}
		switch f := p.Payload.(type) {
		case AdditiveForm:
			if a.Integer != nil && f.Sum() != *a.Integer {
				return fmt.Sprintf("terms sum to %d, not %d", f.Sum(), *a.Integer)
			}
		case FactorForm:
			if a.Integer != nil && f.Product() != *a.Integer {
				return fmt.Sprintf("factors multiply to %d, not %d", f.Product(), *a.Integer)
			}
		}
	case Unknowns:
		set, ok := p.Payload.(EquationSet)
		if !ok {
			return fmt.Sprintf("payload %T has no equations", p.Payload)
		}
		for _, eq := range set.Equations {
			l, err := expr.Evaluate(Substitute(eq.Left, a))
			if err != nil {
				return fmt.Sprintf("evaluate %q: %v", eq.Left, err)
			}
			r, err := expr.Evaluate(Substitute(eq.Right, a))
			if err != nil {
				return fmt.Sprintf("evaluate %q: %v", eq.Right, err)
			}
			if math.Abs(l-r) > 1e-9 {
				return fmt.Sprintf("%q does not hold: %v != %v", eq.Text, l, r)
			}
		}
	case Roots:
		q, ok := p.Payload.(QuadraticForm)
		if !ok {
			return fmt.Sprintf("payload %T is not a quadratic", p.Payload)
		}
		for _, r := range a {
			if v := q.At(r); v != 0 {
				return fmt.Sprintf("root %d gives %d, not 0", r, v)
			}
		}
		// Vieta: a repeated root must really be double.
		if len(a) == 2 && (q.A*(a[0]+a[1]) != -q.B || q.A*a[0]*a[1] != q.C) {
			return fmt.Sprintf("roots %v do not factor %s", []int64(a), q.Text())
		}
	}
	return ""
}

// Substitute replaces each variable in an evaluator expression with its
// parenthesized value.
func Substitute(s string, values Unknowns) string {
	pairs := make([]string, 0, 2*len(values))
	for _, name := range sortedNames(values) {
		pairs = append(pairs, name, "("+strconv.FormatFloat(values[name], 'f', -1, 64)+")")
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
