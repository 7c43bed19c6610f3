package calculator

import (
	"fmt"
	"strings"
)

// State is a point-in-time copy of the engine state
type State struct {
	Display         string
	Expression      string
	PendingOperator Operator
	AwaitingOperand bool
	History         []HistoryEntry

	// Err is the failure of the most recent evaluation, if any.
	Err error
}

// HasPendingOperator reports whether an operator is waiting for its right operand
func (s State) HasPendingOperator() bool {
	return s.PendingOperator.Valid()
}

// Engine is a calculator with a single pending binary operation and a bounded history.
//
// Operators chain left to right without precedence: 2 + 3 × 4 evaluates as (2 + 3) × 4.
// An Engine is not safe for concurrent use.
type Engine struct {
	display  string
	left     string
	pending  Operator
	awaiting bool
	history  history
	lastErr  error
}

// New creates an engine in its initial state
func New() *Engine {
	e := &Engine{}
	e.Clear()
	return e
}

// Display returns the operand currently being edited, or the last result
func (e *Engine) Display() string {
	return e.display
}

// Expression returns the left operand and pending operator glyph, e.g. "12 + ",
// or an empty string when no operator is pending
func (e *Engine) Expression() string {
	if !e.pending.Valid() {
		return ""
	}
	return e.left + " " + e.pending.Glyph() + " "
}

// PendingOperator returns the operator awaiting its right operand, if any
func (e *Engine) PendingOperator() (Operator, bool) {
	return e.pending, e.pending.Valid()
}

// AwaitingOperand reports whether the next digit starts a new operand
func (e *Engine) AwaitingOperand() bool {
	return e.awaiting
}

// History returns a copy of the completed calculations, most recent first
func (e *Engine) History() []HistoryEntry {
	return e.history.list()
}

// Err returns the failure of the most recent evaluation. It is reset by the
// next input, so it only describes the operation that just ran.
func (e *Engine) Err() error {
	return e.lastErr
}

// Snapshot returns a copy of the full engine state
func (e *Engine) Snapshot() State {
	return State{
		Display:         e.display,
		Expression:      e.Expression(),
		PendingOperator: e.pending,
		AwaitingOperand: e.awaiting,
		History:         e.history.list(),
		Err:             e.lastErr,
	}
}

// InputDigit appends a digit to the display, or starts a new operand with it
func (e *Engine) InputDigit(digit string) error {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, digit)
	}
	e.lastErr = nil

	switch {
	case e.awaiting:
		e.display = digit
		e.awaiting = false
	case e.display == "0":
		e.display = digit
	default:
		e.display += digit
	}
	return nil
}

// InputDecimal adds a decimal point unless the operand already has one
func (e *Engine) InputDecimal() {
	e.lastErr = nil
	if e.awaiting {
		e.display = "0."
		e.awaiting = false
		return
	}
	if strings.IndexByte(e.display, '.') < 0 {
		e.display += "."
	}
}

// InputOperator sets the pending operator. If an operand was being entered and an
// operator is already pending, that operation is resolved first and its result
// becomes the left operand. Invalid operators are ignored.
func (e *Engine) InputOperator(op Operator) {
	if !op.Valid() {
		return
	}
	e.lastErr = nil

	if e.pending.Valid() && !e.awaiting {
		if !e.resolve() {
			return
		}
	}

	// Pressing another operator while awaiting the right operand replaces the pending one.
	if !e.pending.Valid() {
		e.left = e.display
	}
	e.pending = op
	e.awaiting = true
}

// Evaluate applies the pending operator to the left operand and the display.
// It does nothing when no operator is pending. On failure the engine is cleared
// and the cause is available from Err.
func (e *Engine) Evaluate() {
	e.resolve()
}

func (e *Engine) resolve() bool {
	if !e.pending.Valid() {
		return false
	}

	full := e.Expression() + e.display
	value, err := evaluate(full)
	if err != nil {
		e.Clear()
		e.lastErr = err
		return false
	}

	result := formatNumber(value)
	e.history.push(HistoryEntry{Expression: full, Result: result})

	e.display = result
	e.left = ""
	e.pending = 0
	e.awaiting = true
	e.lastErr = nil
	return true
}

// Clear resets everything except the history
func (e *Engine) Clear() {
	e.display = "0"
	e.left = ""
	e.pending = 0
	e.awaiting = true
	e.lastErr = nil
}

// ClearEntry resets only the operand being entered
func (e *Engine) ClearEntry() {
	e.lastErr = nil
	e.display = "0"
	e.awaiting = true
}

// Backspace removes the last character of the display. Removing the final digit
// (or leaving only a sign) resets the display to "0" and starts a new operand.
func (e *Engine) Backspace() {
	e.lastErr = nil
	if len(e.display) > 1 {
		if trimmed := e.display[:len(e.display)-1]; trimmed != "-" {
			e.display = trimmed
			return
		}
	}
	e.display = "0"
	e.awaiting = true
}

// ClearHistory empties the history log
func (e *Engine) ClearHistory() {
	e.history.reset()
}
