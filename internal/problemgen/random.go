package problemgen

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"strings"
)

// NewRand returns a PCG-backed source. A zero seed draws fresh entropy;
// any other seed yields a reproducible sequence.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DeriveSeed maps parts to a stable non-zero seed.
func DeriveSeed(parts ...string) uint64 {
	h := sha256.Sum256([]byte(strings.Join(parts, "|")))
	v := binary.LittleEndian.Uint64(h[:8])
	if v == 0 {
		v = 1
	}
	return v
}

// intIn returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func intIn(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int64N(hi-lo+1)
}

// coin returns true with probability p.
func coin(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// randSign returns +1 or -1 with equal probability.
func randSign(rng *rand.Rand) int {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// attempt runs try up to n times and returns the first accepted value,
// falling back to fallback when every try is rejected.
func attempt[T any](n int, try func() (T, bool), fallback func() T) T {
	for range max(n, 1) {
		if v, ok := try(); ok {
			return v
		}
	}
	return fallback()
}
