package problemgen

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/expr"
	"github.com/abhisek/mathdrill/internal/fraction"
)

// Tolerances used when comparing a learner's input to the expected value.
const (
	ScalarEpsilon = 1e-6 // fraction and basic-ops answers, strict
	SystemEpsilon = 1e-3 // per unknown in equation systems, inclusive
)

// CheckAnswer reports whether inputs, keyed by input name, answer a
// problem of the given kind. Unparseable or missing input is simply wrong;
// CheckAnswer never fails.
//
// Accepted forms:
// - Fractions: "n/d" (sign on either part), decimals with "." or ",", or a
//   small arithmetic expression such as "1/2+1/4"
// - Basic ops: an integer, or a decimal within ScalarEpsilon
// - Equations: one decimal per declared unknown, within SystemEpsilon
// - Polynomials: the roots separated by ",", ";" or spaces, in any order
func CheckAnswer(kind Kind, inputs map[string]string, answer Answer) bool {
	switch a := answer.(type) {
	case Solution:
		raw := inputs[InputAnswer]
		if kind == KindFraction {
			return checkFraction(raw, a)
		}
		return checkInteger(raw, a)
	case Unknowns:
		return checkUnknowns(inputs, a)
	case Roots:
		return checkRoots(inputs[InputRoots], a)
	}
	return false
}

// Check reports whether inputs answer p.
func (p *Problem) Check(inputs map[string]string) bool {
	return CheckAnswer(p.Kind, inputs, p.Answer)
}

// CheckInput checks a single line of input against p. For problems with
// several unknowns the line holds either "x=1 y=2" assignments or the
// values in variable order, separated by spaces or ";".
func CheckInput(raw string, p *Problem) bool {
	return p.Check(ParseInputs(raw, p.Inputs()))
}

// assignSpace matches the spacing around "=" in "x = 1".
var assignSpace = regexp.MustCompile(`\s*=\s*`)

// ParseInputs maps one line of input onto the named fields.
func ParseInputs(raw string, names []string) map[string]string {
	if len(names) == 1 {
		return map[string]string{names[0]: raw}
	}
	raw = assignSpace.ReplaceAllString(raw, "=")
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ' ' || r == '\t' })
	out := make(map[string]string, len(names))
	for i, f := range fields {
		if k, v, ok := strings.Cut(f, "="); ok {
			out[strings.TrimSpace(k)] = v
			continue
		}
		if i < len(names) {
			out[names[i]] = f
		}
	}
	return out
}

// ParseAnswer reads a learner's input as a number. It accepts "n/d",
// decimals with either separator, and arithmetic expressions.
func ParseAnswer(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, "/") == 1 {
		if f, err := fraction.Parse(s); err == nil {
			return f.Value(), true
		}
	}
	if v, ok := parseNumber(s); ok {
		return v, true
	}
	v, err := expr.Evaluate(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseNumber reads an integer, a decimal with "." or ",", or "n/d".
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if strings.Contains(s, "/") {
		f, err := fraction.Parse(s)
		if err != nil {
			return 0, false
		}
		return f.Value(), true
	}
	if !isPlainDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// isPlainDecimal rejects the exponent, hex and inf/nan forms ParseFloat
// would otherwise accept.
func isPlainDecimal(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

func checkFraction(raw string, sol Solution) bool {
	v, ok := ParseAnswer(raw)
	if !ok {
		return false
	}
	return math.Abs(v-sol.Value()) < ScalarEpsilon
}

func checkInteger(raw string, sol Solution) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if sol.Integer != nil {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n == *sol.Integer
		}
	}
	v, ok := parseNumber(raw)
	if !ok {
		return false
	}
	return math.Abs(v-sol.Value()) < ScalarEpsilon
}

func checkUnknowns(inputs map[string]string, want Unknowns) bool {
	if len(want) == 0 {
		return false
	}
	for name, expected := range want {
		raw, ok := inputs[name]
		if !ok {
			return false
		}
		v, ok := parseNumber(raw)
		if !ok || math.Abs(v-expected) > SystemEpsilon {
			return false
		}
	}
	return true
}

func checkRoots(raw string, want Roots) bool {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) != len(want) || len(want) == 0 {
		return false
	}
	got := make([]float64, len(fields))
	for i, f := range fields {
		v, ok := parseNumber(f)
		if !ok {
			return false
		}
		got[i] = v
	}
	slices.Sort(got)
	exp := slices.Clone(want)
	slices.Sort(exp)
	for i := range got {
		if math.Abs(got[i]-float64(exp[i])) >= ScalarEpsilon {
			return false
		}
	}
	return true
}
