package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 3 {
		t.Fatalf("expected 3 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "answer-format", "math-check"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts != 10 {
		t.Errorf("expected MaxAttempts 10, got %d", cfg.MaxAttempts)
	}
	if cfg.MinResult != 20 {
		t.Errorf("expected MinResult 20, got %d", cfg.MinResult)
	}
	if !cfg.AdditionAllowed || !cfg.MultDivAllowed {
		t.Errorf("expected both basic-ops forms allowed, got %v/%v", cfg.AdditionAllowed, cfg.MultDivAllowed)
	}
	if cfg.AdditionWeight != 0.5 || cfg.FractionMethodWeight != 0.5 {
		t.Errorf("expected weights 0.5/0.5, got %v/%v", cfg.AdditionWeight, cfg.FractionMethodWeight)
	}
	if cfg.MaxFactorDenominator != 50 {
		t.Errorf("expected MaxFactorDenominator 50, got %d", cfg.MaxFactorDenominator)
	}
	if cfg.RoundLength != 10 {
		t.Errorf("expected RoundLength 10, got %d", cfg.RoundLength)
	}
}

// validProblem returns a small, consistent basic-ops problem.
func validProblem() *Problem {
	return &Problem{
		Kind:    KindBasicOps,
		Level:   1,
		Payload: AdditiveForm{Terms: []int64{30, 25, -5}},
		Answer:  IntSolution(50),
	}
}

func basicRequest() Request {
	return Request{Kind: KindBasicOps, Level: 1}
}
