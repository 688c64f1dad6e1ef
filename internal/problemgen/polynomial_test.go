package problemgen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePolynomial_RootsAreIntegral(t *testing.T) {
	rng := rand.New(rand.NewPCG(30, 30))
	for _, level := range []Level{1, 2, 3} {
		for range 500 {
			q, roots := GeneratePolynomial(rng, level, 10)
			require.Positive(t, q.A)
			require.Len(t, roots, 2)
			require.LessOrEqual(t, roots[0], roots[1])
			for _, r := range roots {
				require.Zero(t, q.At(r), "%s at %d", q.Text(), r)
			}
			require.Equal(t, -q.B, q.A*(roots[0]+roots[1]))
			require.Equal(t, q.C, q.A*roots[0]*roots[1])
		}
	}
}

func TestGeneratePolynomial_FallbackIsMonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 31))
	// Zero attempts still makes one try; the result must be valid either way.
	for range 200 {
		q, roots := GeneratePolynomial(rng, 1, 0)
		for _, r := range roots {
			require.Zero(t, q.At(r))
		}
	}
}

func TestIntegerRoots(t *testing.T) {
	tests := []struct {
		q     QuadraticForm
		roots Roots
		ok    bool
	}{
		{QuadraticForm{1, -5, 6}, Roots{2, 3}, true},
		{QuadraticForm{1, 2, 1}, Roots{-1, -1}, true},
		{QuadraticForm{2, -2, -4}, Roots{-1, 2}, true},
		{QuadraticForm{2, -1, -1}, nil, false}, // roots 1 and -1/2
		{QuadraticForm{1, 0, 1}, nil, false},
		{QuadraticForm{1, 0, -2}, nil, false},
		{QuadraticForm{0, 1, 1}, nil, false},
	}
	for _, tc := range tests {
		got, ok := IntegerRoots(tc.q)
		if ok != tc.ok || (ok && !assert.ObjectsAreEqual(tc.roots, got)) {
			t.Errorf("IntegerRoots(%+v) = %v, %v, want %v, %v", tc.q, got, ok, tc.roots, tc.ok)
		}
	}
}

func TestQuadraticForm_Render(t *testing.T) {
	assert.Equal(t, "x^2 - 5x + 6 = 0", QuadraticForm{1, -5, 6}.Text())
	assert.Equal(t, "2x^{2} - 8 = 0", QuadraticForm{2, 0, -8}.LaTeX())
	assert.Equal(t, "x^2 + x = 0", QuadraticForm{1, 1, 0}.Text())
}

func TestExpand(t *testing.T) {
	assert.Equal(t, QuadraticForm{6, -1, -2}, expand(2, 1, 3, -2))
	assert.Equal(t, QuadraticForm{1, -3, 2}, expand(-1, 1, 1, -2))
}

func TestIsqrt(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		s := isqrt(n)
		if s*s > n || (s+1)*(s+1) <= n {
			t.Fatalf("isqrt(%d) = %d", n, s)
		}
	}
}
