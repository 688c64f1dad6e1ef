package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Generator produces problems of one kind. Implementations hold no mutable
// state; all randomness comes from the rng argument.
type Generator interface {
	// Kind returns the kind this generator serves.
	Kind() Kind

	// Generate draws one candidate problem. The candidate is validated by
	// the caller and may be rejected and redrawn.
	Generate(rng *rand.Rand, req Request) *Problem

	// Fallback returns a guaranteed-valid problem once attempts run out.
	Fallback(rng *rand.Rand, req Request) *Problem
}

// Request describes the problem a caller wants.
type Request struct {
	Kind  Kind
	Level Level

	// Unknowns is the number of variables for equation problems (1-3).
	// Zero means 1.
	Unknowns int

	// Target is the basic-ops result. Zero draws one from the level's range.
	Target int64

	// Seed makes generation reproducible. Zero draws fresh entropy.
	Seed uint64
}

// normalize fills defaults and rejects requests no generator can serve.
func (r Request) normalize() (Request, error) {
	if r.Level == 0 {
		r.Level = MinLevel
	}
	if !r.Level.Valid() {
		return r, fmt.Errorf("%w: level %d outside [%d, %d]", ErrInvalidRequest, r.Level, MinLevel, MaxLevel)
	}
	switch r.Kind {
	case KindBasicOps, KindFraction, KindPolynomial:
	case KindEquation:
		if r.Unknowns == 0 {
			r.Unknowns = 1
		}
		if r.Unknowns < 1 || r.Unknowns > 3 {
			return r, fmt.Errorf("%w: %d unknowns, want 1-3", ErrInvalidRequest, r.Unknowns)
		}
	default:
		return r, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, r.Kind)
	}
	if r.Target < 0 {
		return r, fmt.Errorf("%w: negative target %d", ErrInvalidRequest, r.Target)
	}
	return r, nil
}

// newGenerators returns one generator per kind, configured from cfg.
func newGenerators(cfg Config) map[Kind]Generator {
	gens := []Generator{
		&BasicOpsGenerator{config: cfg},
		&FractionGenerator{config: cfg},
		&EquationGenerator{config: cfg},
		&PolynomialGenerator{config: cfg},
	}
	m := make(map[Kind]Generator, len(gens))
	for _, g := range gens {
		m[g.Kind()] = g
	}
	return m
}
