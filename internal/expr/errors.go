package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for evaluation failures. Every error returned by Evaluate
// wraps exactly one of these, so callers can match with errors.Is.
var (
	ErrDivisionByZero        = errors.New("division by zero")
	ErrUnexpectedEnd         = errors.New("unexpected end of expression")
	ErrTrailingInput         = errors.New("unexpected trailing input")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrExpectedNumber        = errors.New("expected number")
)

// Error describes where and why evaluation failed.
type Error struct {
	Pos    int    // byte offset into the input
	Err    error  // one of the sentinel errors above
	Detail string // optional, e.g. the offending literal
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v at position %d: %s", e.Err, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
