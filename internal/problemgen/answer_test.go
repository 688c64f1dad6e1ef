package problemgen

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/fraction"
)

func TestCheckAnswer_Integer(t *testing.T) {
	sol := IntSolution(42)

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"42.0", true},
		{"42,0", true},
		{"43", false},
		{"", false},
		{"abc", false},
		{"40+2", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(KindBasicOps, map[string]string{InputAnswer: tc.input}, sol)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 42/basic) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Fraction(t *testing.T) {
	sol := FractionSolution(fraction.New(3, 4))

	tests := []struct {
		input string
		want  bool
	}{
		{"3/4", true},
		{"6/8", true},
		{" 3 / 4 ", true},
		{"-3/-4", true},
		{"0.75", true},
		{"0,75", true},
		{"1/2+1/4", true},
		{"(1+2)/4", true},
		{"3/5", false},
		{"-3/4", false},
		{"3/0", false},
		{"1/", false},
		{"", false},
		{"three quarters", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(KindFraction, map[string]string{InputAnswer: tc.input}, sol)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 3/4/fraction) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_NegativeFraction(t *testing.T) {
	sol := FractionSolution(fraction.New(-5, 6))
	for _, in := range []string{"-5/6", "5/-6", "-10/12"} {
		if !CheckAnswer(KindFraction, map[string]string{InputAnswer: in}, sol) {
			t.Errorf("CheckAnswer(%q, -5/6) = false, want true", in)
		}
	}
}

func TestCheckAnswer_ScalarTolerance(t *testing.T) {
	sol := Solution{Decimal: 0.5, Exact: "1/2"}
	in := func(s string) map[string]string { return map[string]string{InputAnswer: s} }

	if !CheckAnswer(KindFraction, in("0.5000005"), sol) {
		t.Error("difference below 1e-6 should be accepted")
	}
	if CheckAnswer(KindFraction, in("0.500002"), sol) {
		t.Error("difference above 1e-6 should be rejected")
	}
}

func TestCheckAnswer_SolutionFallbackOrder(t *testing.T) {
	in := map[string]string{InputAnswer: "3/4"}
	if !CheckAnswer(KindFraction, in, Solution{Exact: "3/4"}) {
		t.Error("exact string should be used when decimal is absent")
	}
	seven := int64(7)
	if !CheckAnswer(KindFraction, map[string]string{InputAnswer: "7"}, Solution{Integer: &seven}) {
		t.Error("integer should be used when decimal and exact are absent")
	}
}

func TestCheckAnswer_Unknowns(t *testing.T) {
	want := Unknowns{"x": 3, "y": -2}

	tests := []struct {
		name   string
		inputs map[string]string
		ok     bool
	}{
		{"exact", map[string]string{"x": "3", "y": "-2"}, true},
		{"decimal comma", map[string]string{"x": "3,0", "y": "-2.0"}, true},
		{"within tolerance", map[string]string{"x": "3.0009", "y": "-2"}, true},
		{"outside tolerance", map[string]string{"x": "3.002", "y": "-2"}, false},
		{"missing", map[string]string{"x": "3"}, false},
		{"unparseable", map[string]string{"x": "3", "y": "minus two"}, false},
		{"extra keys ignored", map[string]string{"x": "3", "y": "-2", "equations": "x+y=1"}, true},
	}

	for _, tc := range tests {
		if got := CheckAnswer(KindEquation, tc.inputs, want); got != tc.ok {
			t.Errorf("%s: CheckAnswer = %v, want %v", tc.name, got, tc.ok)
		}
	}
}

func TestCheckAnswer_Roots(t *testing.T) {
	want := Roots{-3, 2}

	tests := []struct {
		input string
		want  bool
	}{
		{"2,-3", true},
		{"-3, 2", true},
		{"2 -3", true},
		{"2;-3", true},
		{"2", false},
		{"2,-3,4", false},
		{"2,3", false},
		{"", false},
		{"a,b", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(KindPolynomial, map[string]string{InputRoots: tc.input}, want)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, roots) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckInput(t *testing.T) {
	set, u := systemOf([][]int64{{1, 1}, {1, -1}}, []int64{1, 2})
	p := &Problem{Kind: KindEquation, Level: 1, Payload: set, Answer: u}

	tests := []struct {
		input string
		want  bool
	}{
		{"1 2", true},
		{"1; 2", true},
		{"x=1 y=2", true},
		{"x = 1 y = 2", true},
		{"x= 1; y= 2", true},
		{"y =2;x= 1", true},
		{"x = 2 y = 1", false},
		{"y=2 x=1", true},
		{"2 1", false},
		{"1", false},
	}

	for _, tc := range tests {
		if got := CheckInput(tc.input, p); got != tc.want {
			t.Errorf("CheckInput(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if !CheckInput("50", validProblem()) {
		t.Error("CheckInput(50) on basic problem should be true")
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"1/4", 0.25, true},
		{"2,5", 2.5, true},
		{"2*(3+4)-1", 13, true},
		{"1e3", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{" 3 / 4 ", 0.75, true},
		{"1/2 + 1/4", 0.75, true},
		{"1 2/3", 0, false},
		{"1 2", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseAnswer(tc.input)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseAnswer(%q) = %v, %v, want %v, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCheckAnswer_SpaceSeparatedDigits(t *testing.T) {
	// A mixed number or split digits must not be read as one number.
	tests := []struct {
		input string
		kind  Kind
		sol   Solution
	}{
		{"1 2/3", KindFraction, FractionSolution(fraction.Int(4))},
		{"1 2/3", KindFraction, FractionSolution(fraction.New(12, 3))},
		{"1 2", KindFraction, IntSolution(12)},
		{"1 2", KindBasicOps, IntSolution(12)},
	}
	for _, tc := range tests {
		if CheckAnswer(tc.kind, map[string]string{InputAnswer: tc.input}, tc.sol) {
			t.Errorf("CheckAnswer(%q, %s) = true, want false", tc.input, tc.sol.Exact)
		}
	}
}
