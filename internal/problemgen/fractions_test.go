package problemgen

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/expr"
	"github.com/abhisek/mathdrill/internal/fraction"
)

func TestGenerateFraction_ForwardLevel1(t *testing.T) {
	rng := rand.New(rand.NewPCG(10, 10))
	for range 1000 {
		e, sol := GenerateFraction(rng, 1, 1.0, 10)

		for _, f := range append(append([]fraction.Fraction{}, e.Upper...), e.Lower...) {
			require.NotZero(t, f.Denominator, "expression %s", e.Text())
		}
		exact, err := fraction.Parse(sol.Exact)
		require.NoError(t, err)
		require.InDelta(t, exact.Value(), sol.Decimal, 1e-9, "expression %s", e.Text())

		res, err := e.Result()
		require.NoError(t, err)
		require.Equal(t, res.String(), sol.Exact)
	}
}

func TestGenerateFraction_AllLevelsEvaluate(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	for _, level := range []Level{1, 2, 3} {
		for _, weight := range []float64{0, 0.5, 1} {
			for range 300 {
				e, sol := GenerateFraction(rng, level, weight, 10)
				got, err := expr.Evaluate(e.Expr())
				require.NoError(t, err, e.Expr())
				require.InDelta(t, sol.Decimal, got, 1e-9, e.Expr())
				require.Equal(t, sol.Integer != nil, sol.Decimal == math.Trunc(sol.Decimal))
			}
		}
	}
}

func TestGenerateFraction_TermCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 12))
	for range 500 {
		e, _ := GenerateFraction(rng, 1, 0.5, 10)
		assert.GreaterOrEqual(t, len(e.Upper), 1)
		assert.LessOrEqual(t, len(e.Upper), 2)
		assert.LessOrEqual(t, len(e.Lower), 1)
	}
}

func TestBackwardFractions_HitsTarget(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 13))
	for _, level := range []Level{1, 2, 3} {
		r := fractionRanges[level]
		for range 500 {
			e := backwardFractions(rng, r)
			res, err := e.Result()
			require.NoError(t, err)
			require.LessOrEqual(t, res.Numerator, int64(100))
			require.LessOrEqual(t, res.Denominator, int64(100))
			for _, f := range e.Upper {
				require.NotZero(t, f.Numerator, "no zero terms in %s", e.Text())
			}
		}
	}
}

func TestSignedParts(t *testing.T) {
	rng := rand.New(rand.NewPCG(14, 14))
	for range 1000 {
		n := intIn(rng, 1, 100)
		count := int(intIn(rng, 1, 3))
		parts := signedParts(rng, n, count)

		var sum int64
		for _, p := range parts {
			require.NotZero(t, p)
			sum += p
		}
		require.Equal(t, n, sum, "parts %v", parts)
		require.LessOrEqual(t, len(parts), count)
	}
}

func TestSubtractionFractions(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 15))
	e := subtractionFractions(rng)
	require.Len(t, e.Upper, 2)
	assert.Equal(t, int64(5), e.Upper[0].Denominator)
	assert.Equal(t, int64(4), e.Upper[1].Denominator)
	assert.True(t, e.Upper[1].IsNegative())

	res, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Denominator)
}

func TestFractionExpression_Render(t *testing.T) {
	e := FractionExpression{
		Upper: []fraction.Fraction{fraction.New(1, 2), fraction.New(-2, 6)},
		Lower: []fraction.Fraction{fraction.New(3, 4)},
	}
	assert.Equal(t, `\frac{\frac{1}{2} - \frac{2}{6}}{\frac{3}{4}}`, e.LaTeX())
	assert.Equal(t, "(1/2 - 2/6) ÷ (3/4)", e.Text())
	assert.Equal(t, "((1/2) - (2/6)) / ((3/4))", e.Expr())

	e = FractionExpression{Upper: []fraction.Fraction{fraction.New(-1, 2), fraction.New(1, 3)}}
	assert.Equal(t, "-1/2 + 1/3", e.Text())
	assert.Equal(t, "-(1/2) + (1/3)", e.Expr())
}
