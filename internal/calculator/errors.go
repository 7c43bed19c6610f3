package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidDigit is returned when digit input is not a single ASCII digit.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrEvaluation is the kind shared by every evaluation failure.
	ErrEvaluation = errors.New("evaluation failed")

	errDivisionByZero = errors.New("division by zero")
	errNotFinite      = errors.New("result is not a finite number")
	errMalformed      = errors.New("malformed expression")
)

// EvaluationError describes why an infix expression could not be evaluated.
type EvaluationError struct {
	Expression string
	Err        error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate %q: %v", e.Expression, e.Err)
}

// Unwrap exposes both the cause and ErrEvaluation to errors.Is.
func (e *EvaluationError) Unwrap() []error {
	return []error{ErrEvaluation, e.Err}
}

func newEvaluationError(expression string, err error) error {
	return &EvaluationError{Expression: expression, Err: err}
}
