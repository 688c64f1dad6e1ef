package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"slices"
)

var exactPattern = regexp.MustCompile(`^-?\d+(/\d+)?$`)

// AnswerFormatValidator checks that the stored answer is internally
// consistent: Exact is canonical and agrees with Decimal, Integer is set
// exactly when the value is integral, and multi-value answers cover the
// declared inputs.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *Problem, _ Request) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	switch a := p.Answer.(type) {
	case Solution:
		if math.IsNaN(a.Decimal) || math.IsInf(a.Decimal, 0) {
			return fail("decimal %v is not finite", a.Decimal)
		}
		if a.Exact != "" {
			if !exactPattern.MatchString(a.Exact) {
				return fail("exact answer %q is not of the form n or n/d", a.Exact)
			}
			ev, _ := parseNumber(a.Exact)
			if math.Abs(ev-a.Decimal) > 1e-9 {
				return fail("exact answer %q disagrees with decimal %v", a.Exact, a.Decimal)
			}
		}
		integral := a.Decimal == math.Trunc(a.Decimal)
		if integral != (a.Integer != nil) {
			return fail("integer field presence does not match decimal %v", a.Decimal)
		}
		if a.Integer != nil && float64(*a.Integer) != a.Decimal {
			return fail("integer %d disagrees with decimal %v", *a.Integer, a.Decimal)
		}
	case Unknowns:
		want := p.Inputs()
		got := sortedNames(a)
		if !slices.Equal(sortedCopy(want), got) {
			return fail("unknowns %v do not match variables %v", got, want)
		}
	case Roots:
		if len(a) != 2 {
			return fail("quadratic needs 2 roots, got %d", len(a))
		}
	}
	return nil
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
