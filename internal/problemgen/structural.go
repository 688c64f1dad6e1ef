package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// StructuralValidator checks that the payload and answer are present, of
// the types the kind requires, and that the rendering is not trivial.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, req Request) *ValidationError {
	if p == nil || p.Payload == nil || p.Answer == nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "payload or answer is missing",
			Retryable: true,
		}
	}
	if p.Kind != req.Kind {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("kind %q does not match request %q", p.Kind, req.Kind),
		}
	}

	if msg := checkShape(p); msg != "" {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	text := strings.TrimSpace(p.Text())
	if text == "" || strings.TrimSpace(p.LaTeX()) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "rendering is empty",
			Retryable: true,
		}
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("rendering %q is a bare number", text),
			Retryable: true,
		}
	}
	return nil
}

// checkShape returns a non-empty message when the payload or answer type
// does not fit the kind, or a fraction term has a zero denominator.
func checkShape(p *Problem) string {
	switch p.Kind {
	case KindBasicOps:
		switch f := p.Payload.(type) {
		case AdditiveForm:
			if len(f.Terms) == 0 {
				return "additive form has no terms"
			}
		case FactorForm:
			if len(f.Factors) == 0 {
				return "factor form has no factors"
			}
			for _, x := range f.Factors {
				if x.Fraction != nil && x.Fraction.Denominator == 0 {
					return "factor has a zero denominator"
				}
			}
		default:
			return fmt.Sprintf("basic_ops payload has type %T", p.Payload)
		}
		if _, ok := p.Answer.(Solution); !ok {
			return fmt.Sprintf("basic_ops answer has type %T", p.Answer)
		}
	case KindFraction:
		e, ok := p.Payload.(FractionExpression)
		if !ok {
			return fmt.Sprintf("fraction payload has type %T", p.Payload)
		}
		if len(e.Upper) == 0 {
			return "fraction expression has no terms"
		}
		for _, f := range slices.Concat(e.Upper, e.Lower) {
			if f.Denominator == 0 {
				return "fraction term has a zero denominator"
			}
		}
		if _, ok := p.Answer.(Solution); !ok {
			return fmt.Sprintf("fraction answer has type %T", p.Answer)
		}
	case KindEquation:
		set, ok := p.Payload.(EquationSet)
		if !ok {
			return fmt.Sprintf("equation payload has type %T", p.Payload)
		}
		if len(set.Equations) == 0 || len(set.Equations) != len(set.Variables) {
			return fmt.Sprintf("%d equations for %d variables", len(set.Equations), len(set.Variables))
		}
		if _, ok := p.Answer.(Unknowns); !ok {
			return fmt.Sprintf("equation answer has type %T", p.Answer)
		}
	case KindPolynomial:
		q, ok := p.Payload.(QuadraticForm)
		if !ok {
			return fmt.Sprintf("polynomial payload has type %T", p.Payload)
		}
		if q.A == 0 {
			return "polynomial is not quadratic"
		}
		if _, ok := p.Answer.(Roots); !ok {
			return fmt.Sprintf("polynomial answer has type %T", p.Answer)
		}
	default:
		return fmt.Sprintf("unknown kind %q", p.Kind)
	}
	return ""
}
