package problemgen

// Config controls generation and the Service's retry behavior.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxAttempts bounds every regeneration loop. When it is exhausted the
	// generator's deterministic fallback is used.
	MaxAttempts int

	// MinResult is the lower bound for randomly drawn basic-ops targets.
	MinResult int64

	// AdditionAllowed and MultDivAllowed select the basic-ops forms. With
	// both disabled the additive form is used.
	AdditionAllowed bool
	MultDivAllowed  bool

	// AdditionWeight is P(additive) when both basic-ops forms are allowed.
	AdditionWeight float64

	// FractionMethodWeight is P(forward construction) for fraction problems.
	FractionMethodWeight float64

	// MaxFactorDenominator bounds k when a factor is shown as value*k/k.
	MaxFactorDenominator int64

	// RoundLength is the number of problems in a practice round.
	RoundLength int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts:          10,
		MinResult:            20,
		AdditionAllowed:      true,
		MultDivAllowed:       true,
		AdditionWeight:       0.5,
		FractionMethodWeight: 0.5,
		MaxFactorDenominator: 50,
		RoundLength:          10,
	}
}
