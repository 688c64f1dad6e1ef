package problemgen

import (
	"encoding/json"
	"fmt"
	"math"
)

// problemJSON is the exchange document for a Problem. Payload and answer
// are decoded according to the payload's "form" and the problem kind.
type problemJSON struct {
	ID      string          `json:"id"`
	Kind    Kind            `json:"kind"`
	Level   Level           `json:"level"`
	LaTeX   string          `json:"latex"`
	Text    string          `json:"text"`
	Inputs  []string        `json:"inputs"`
	Payload json.RawMessage `json:"payload"`
	Answer  json.RawMessage `json:"answer"`
}

type formTag struct {
	Form string `json:"form"`
}

type unknownsJSON struct {
	Unknowns map[string]float64 `json:"unknowns"`
}

type rootsJSON struct {
	Roots []int64 `json:"roots"`
}

// MarshalJSON encodes p with its renderings and input names included.
func (p *Problem) MarshalJSON() ([]byte, error) {
	payload, err := marshalPayload(p.Payload)
	if err != nil {
		return nil, err
	}
	answer, err := marshalAnswer(p.Answer)
	if err != nil {
		return nil, err
	}
	return json.Marshal(problemJSON{
		ID:      p.ID,
		Kind:    p.Kind,
		Level:   p.Level,
		LaTeX:   p.LaTeX(),
		Text:    p.Text(),
		Inputs:  p.Inputs(),
		Payload: payload,
		Answer:  answer,
	})
}

// UnmarshalJSON decodes a document produced by MarshalJSON. Renderings and
// input names in the document are ignored; they are derived again.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var doc problemJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	payload, err := unmarshalPayload(doc.Payload)
	if err != nil {
		return err
	}
	answer, err := unmarshalAnswer(doc.Kind, doc.Answer)
	if err != nil {
		return err
	}
	*p = Problem{ID: doc.ID, Kind: doc.Kind, Level: doc.Level, Payload: payload, Answer: answer}
	return nil
}

func marshalPayload(pl Payload) (json.RawMessage, error) {
	if pl == nil {
		return nil, fmt.Errorf("problem has no payload")
	}
	body, err := json.Marshal(pl)
	if err != nil {
		return nil, err
	}
	// Splice the form tag into the payload object.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, _ := json.Marshal(pl.form())
	fields["form"] = tag
	return json.Marshal(fields)
}

func unmarshalPayload(raw json.RawMessage) (Payload, error) {
	var tag formTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	var (
		pl  Payload
		err error
	)
	switch tag.Form {
	case AdditiveForm{}.form():
		var v AdditiveForm
		err = json.Unmarshal(raw, &v)
		pl = v
	case FactorForm{}.form():
		var v FactorForm
		err = json.Unmarshal(raw, &v)
		pl = v
	case FractionExpression{}.form():
		var v FractionExpression
		err = json.Unmarshal(raw, &v)
		pl = v
	case EquationSet{}.form():
		var v EquationSet
		err = json.Unmarshal(raw, &v)
		pl = v
	case QuadraticForm{}.form():
		var v QuadraticForm
		err = json.Unmarshal(raw, &v)
		pl = v
	default:
		return nil, fmt.Errorf("decode payload: unknown form %q", tag.Form)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", tag.Form, err)
	}
	return pl, nil
}

func marshalAnswer(a Answer) (json.RawMessage, error) {
	switch v := a.(type) {
	case Solution:
		return json.Marshal(v)
	case Unknowns:
		return json.Marshal(unknownsJSON{Unknowns: v})
	case Roots:
		return json.Marshal(rootsJSON{Roots: v})
	}
	return nil, fmt.Errorf("unsupported answer type %T", a)
}

func unmarshalAnswer(kind Kind, raw json.RawMessage) (Answer, error) {
	switch kind {
	case KindBasicOps, KindFraction:
		var s Solution
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode solution: %w", err)
		}
		return s, nil
	case KindEquation:
		var u unknownsJSON
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decode unknowns: %w", err)
		}
		return Unknowns(u.Unknowns), nil
	case KindPolynomial:
		var r rootsJSON
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decode roots: %w", err)
		}
		return Roots(r.Roots), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, kind)
}

// UnmarshalJSON fills Decimal from Exact, then Integer, when it is absent,
// and sets Integer when the value is integral.
func (s *Solution) UnmarshalJSON(data []byte) error {
	var raw struct {
		Decimal *float64 `json:"decimal"`
		Exact   string   `json:"exact"`
		Integer *int64   `json:"integer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Solution{Exact: raw.Exact, Integer: raw.Integer}
	switch {
	case raw.Decimal != nil:
		s.Decimal = *raw.Decimal
	case raw.Exact != "":
		v, ok := parseNumber(raw.Exact)
		if !ok {
			return fmt.Errorf("solution: invalid exact value %q", raw.Exact)
		}
		s.Decimal = v
	case raw.Integer != nil:
		s.Decimal = float64(*raw.Integer)
	}
	if s.Integer == nil && s.Decimal == math.Trunc(s.Decimal) && math.Abs(s.Decimal) < 1<<53 {
		v := int64(s.Decimal)
		s.Integer = &v
	}
	return nil
}
