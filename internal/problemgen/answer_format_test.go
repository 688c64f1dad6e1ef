package problemgen

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/fraction"
)

func TestAnswerFormat_Solution(t *testing.T) {
	v := &AnswerFormatValidator{}
	three := int64(3)

	tests := []struct {
		name  string
		sol   Solution
		valid bool
	}{
		{"integer", IntSolution(42), true},
		{"negative integer", IntSolution(-7), true},
		{"fraction", FractionSolution(fraction.New(3, 4)), true},
		{"negative fraction", FractionSolution(fraction.New(-5, 6)), true},
		{"exact disagrees", Solution{Decimal: 0.5, Exact: "3/4"}, false},
		{"bad exact", Solution{Decimal: 0.75, Exact: "0.75"}, false},
		{"integer missing", Solution{Decimal: 3, Exact: "3"}, false},
		{"integer on fraction", Solution{Decimal: 0.75, Exact: "3/4", Integer: &three}, false},
		{"integer disagrees", Solution{Decimal: 4, Exact: "4", Integer: &three}, false},
	}

	for _, tc := range tests {
		p := validProblem()
		p.Answer = tc.sol
		err := v.Validate(p, basicRequest())
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestAnswerFormat_Unknowns(t *testing.T) {
	v := &AnswerFormatValidator{}
	set, u := systemOf([][]int64{{1, 1}, {1, -1}}, []int64{1, 2})
	p := &Problem{Kind: KindEquation, Level: 1, Payload: set, Answer: u}
	req := Request{Kind: KindEquation, Level: 1, Unknowns: 2}

	if err := v.Validate(p, req); err != nil {
		t.Fatalf("matching unknowns should pass: %v", err)
	}

	p.Answer = Unknowns{"x": 1}
	if err := v.Validate(p, req); err == nil {
		t.Error("missing unknown should fail")
	}

	p.Answer = Unknowns{"x": 1, "y": 2, "z": 3}
	if err := v.Validate(p, req); err == nil {
		t.Error("extra unknown should fail")
	}
}

func TestAnswerFormat_Roots(t *testing.T) {
	v := &AnswerFormatValidator{}
	p := &Problem{Kind: KindPolynomial, Level: 1, Payload: expand(1, -1, 1, -2), Answer: Roots{1}}
	if err := v.Validate(p, Request{Kind: KindPolynomial, Level: 1}); err == nil {
		t.Error("single root should fail")
	}
}
