package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned when a Request cannot be served, e.g. an
// unknown kind or an unsupported number of unknowns.
var ErrInvalidRequest = errors.New("invalid problem request")

// Kind identifies a problem generator.
type Kind string

const (
	KindBasicOps   Kind = "basic_ops"  // additive or multiplicative decomposition of an integer
	KindFraction   Kind = "fraction"   // sums and quotients of fractions
	KindEquation   Kind = "equation"   // one linear equation or a system of 2-3
	KindPolynomial Kind = "polynomial" // factorable quadratic, find both roots
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindBasicOps, KindFraction, KindEquation, KindPolynomial}

// ParseKind maps user-facing names (and a few aliases) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "basic_ops", "basic-ops", "ops":
		return KindBasicOps, nil
	case "fraction", "fractions":
		return KindFraction, nil
	case "equation", "equations", "system", "systems":
		return KindEquation, nil
	case "polynomial", "quadratic":
		return KindPolynomial, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, s)
}

// Level is the difficulty knob. Higher levels widen numeric ranges.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 3
)

// Valid reports whether l is within [MinLevel, MaxLevel].
func (l Level) Valid() bool { return l >= MinLevel && l <= MaxLevel }

// Clamp forces l into [MinLevel, MaxLevel].
func (l Level) Clamp() Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

// Payload is the render-ready form of a generated problem.
type Payload interface {
	// LaTeX renders the problem for a math typesetter.
	LaTeX() string

	// Text renders the problem as plain text for terminals.
	Text() string

	form() string
}

// Expression is implemented by payloads that reduce to a single value.
// Expr returns the problem in evaluator syntax, e.g. "12 + 7 - 4".
type Expression interface {
	Payload
	Expr() string
}

// Answer is the canonical solution stored with a payload. It is one of
// Solution, Unknowns or Roots.
type Answer interface {
	answer()
}

// Solution is the answer to a single-valued problem.
type Solution struct {
	// Decimal is the value as a float.
	Decimal float64 `json:"decimal"`

	// Exact is the reduced form, "n/d" or "n", with a leading "-" when negative.
	Exact string `json:"exact,omitempty"`

	// Integer is set iff the value is integral.
	Integer *int64 `json:"integer,omitempty"`
}

func (Solution) answer() {}

// Value returns the expected value, preferring Decimal, then Exact, then
// Integer. A zero Decimal is treated as unset when another field disagrees.
func (s Solution) Value() float64 {
	if s.Decimal != 0 {
		return s.Decimal
	}
	if s.Exact != "" {
		if v, ok := parseNumber(s.Exact); ok {
			return v
		}
	}
	if s.Integer != nil {
		return float64(*s.Integer)
	}
	return 0
}

// IntSolution returns the Solution for an integral value.
func IntSolution(v int64) Solution {
	return Solution{Decimal: float64(v), Exact: fmt.Sprintf("%d", v), Integer: &v}
}

// Unknowns maps variable names to their expected values.
type Unknowns map[string]float64

func (Unknowns) answer() {}

// Roots is the multiset of roots of a polynomial.
type Roots []int64

func (Roots) answer() {}

// Problem is a generated problem paired with its canonical answer.
type Problem struct {
	// ID uniquely identifies the problem instance.
	ID string

	Kind  Kind
	Level Level

	Payload Payload
	Answer  Answer
}

// LaTeX renders the problem for a math typesetter.
func (p *Problem) LaTeX() string { return p.Payload.LaTeX() }

// Text renders the problem as plain text.
func (p *Problem) Text() string { return p.Payload.Text() }

// Inputs names the input fields a front-end must collect to answer p.
func (p *Problem) Inputs() []string {
	switch a := p.Answer.(type) {
	case Unknowns:
		if set, ok := p.Payload.(EquationSet); ok && len(set.Variables) > 0 {
			return append([]string(nil), set.Variables...)
		}
		return sortedNames(a)
	case Roots:
		return []string{InputRoots}
	default:
		return []string{InputAnswer}
	}
}

// Input field names for scalar and polynomial problems.
const (
	InputAnswer = "answer"
	InputRoots  = "roots"
)
