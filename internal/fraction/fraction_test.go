package fraction

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Fraction
	}{
		{Fraction{6, 4, 1}, Fraction{3, 2, 1}},
		{Fraction{6, 4, -1}, Fraction{3, 2, -1}},
		{Fraction{3, -6, 1}, Fraction{1, 2, -1}},
		{Fraction{-3, -6, 1}, Fraction{1, 2, 1}},
		{Fraction{0, 7, -1}, Fraction{0, 1, 1}},
		{Fraction{0, -5, 1}, Fraction{0, 1, 1}},
		{Fraction{12, 1, 1}, Fraction{12, 1, 1}},
		{Fraction{7, 13, 1}, Fraction{7, 13, 1}},
	}

	for _, tc := range tests {
		got := tc.in.Simplify()
		if got != tc.want {
			t.Errorf("%+v.Simplify() = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		f := New(rng.Int64N(401)-200, rng.Int64N(199)+1)
		once := f.Simplify()
		twice := once.Simplify()
		require.Equal(t, once, twice)
		assert.Equal(t, int64(1), GCD(once.Numerator, once.Denominator))
		assert.Positive(t, once.Denominator)
		assert.InDelta(t, f.Value(), once.Value(), 1e-12)
	}
}

func TestNew_Sign(t *testing.T) {
	assert.Equal(t, Fraction{1, 2, -1}, New(-1, 2))
	assert.Equal(t, Fraction{1, 2, -1}, New(1, -2))
	assert.Equal(t, Fraction{1, 2, 1}, New(-1, -2))
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, int64(6), GCD(12, 18))
	assert.Equal(t, int64(6), GCD(-12, 18))
	assert.Equal(t, int64(5), GCD(0, 5))
	assert.Equal(t, int64(1), GCD(0, 0))
	assert.Equal(t, int64(36), LCM(12, 18))
	assert.Equal(t, int64(7), LCM(1, 7))
}

func TestCombineSum(t *testing.T) {
	tests := []struct {
		in   []Fraction
		want Fraction
	}{
		{nil, Zero},
		{[]Fraction{New(1, 2), New(1, 3)}, Fraction{5, 6, 1}},
		{[]Fraction{New(1, 2), New(-1, 2)}, Zero},
		{[]Fraction{New(3, 4), New(-5, 6)}, Fraction{1, 12, -1}},
		{[]Fraction{New(250, 5), New(-120, 4)}, Fraction{20, 1, 1}},
		{[]Fraction{New(2, 4)}, Fraction{1, 2, 1}},
	}

	for _, tc := range tests {
		got := CombineSum(tc.in)
		if got != tc.want {
			t.Errorf("CombineSum(%v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestCombineSum_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		n := rng.IntN(5) + 1
		fs := make([]Fraction, n)
		for i := range fs {
			fs[i] = New(rng.Int64N(41)-20, rng.Int64N(29)+2)
		}
		want := CombineSum(fs)

		shuffled := append([]Fraction(nil), fs...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, want, CombineSum(shuffled))

		// Regrouping: sum the halves first, then sum the partial results.
		mid := n / 2
		regrouped := CombineSum([]Fraction{CombineSum(fs[:mid]), CombineSum(fs[mid:])})
		require.Equal(t, want, regrouped)

		var f float64
		for _, x := range fs {
			f += x.Value()
		}
		require.InDelta(t, f, want.Value(), 1e-9)
	}
}

func TestDivide(t *testing.T) {
	got, err := Divide(New(1, 2), New(3, 4))
	require.NoError(t, err)
	assert.Equal(t, Fraction{2, 3, 1}, got)

	got, err = Divide(New(-1, 2), New(3, 4))
	require.NoError(t, err)
	assert.Equal(t, Fraction{2, 3, -1}, got)

	got, err = Divide(New(-1, 2), New(-1, 4))
	require.NoError(t, err)
	assert.Equal(t, Fraction{2, 1, 1}, got)

	got, err = Divide(Zero, New(5, 7))
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	_, err = Divide(New(1, 2), Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Fraction
		want string
	}{
		{New(3, 4), "3/4"},
		{New(-6, 8), "-3/4"},
		{New(8, 4), "2"},
		{New(-8, 4), "-2"},
		{Zero, "0"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLaTeXAndText(t *testing.T) {
	assert.Equal(t, `\frac{6}{4}`, New(6, 4).LaTeX())
	assert.Equal(t, `-\frac{1}{3}`, New(-1, 3).LaTeX())
	assert.Equal(t, `5`, Int(5).LaTeX())
	assert.Equal(t, "-6/4", New(-6, 4).Text())
	assert.Equal(t, "5", Int(5).Text())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Fraction
		wantErr bool
	}{
		{"3/4", New(3, 4), false},
		{" -3 / 4 ", New(-3, 4), false},
		{"3/-4", New(-3, 4), false},
		{"-3/-4", New(3, 4), false},
		{"7", Int(7), false},
		{"3/0", Fraction{}, true},
		{"a/4", Fraction{}, true},
		{"3/", Fraction{}, true},
		{"", Fraction{}, true},
		{"1 2/3", Fraction{}, true},
		{"1 2", Fraction{}, true},
		{"3/1 2", Fraction{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %+v, want error", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Parse(%q) = %+v, %v, want %+v", tc.in, got, err, tc.want)
		}
	}
}

func TestValue(t *testing.T) {
	assert.InDelta(t, -0.75, New(-3, 4).Value(), 1e-15)
	assert.False(t, math.IsNaN(Zero.Value()))
}
