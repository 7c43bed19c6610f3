package calculator

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when an operator symbol is not recognized
var ErrUnknownOperator = errors.New("unknown operator")

// Operator is a binary arithmetic operator
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Display glyphs used in the expression text
const (
	GlyphAdd      = "+"
	GlyphSubtract = "−"
	GlyphMultiply = "×"
	GlyphDivide   = "÷"
)

// ParseOperator parses either an ASCII symbol (+ - * /) or a display glyph (+ − × ÷)
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case "+":
		return Add, nil
	case "-", GlyphSubtract:
		return Subtract, nil
	case "*", GlyphMultiply:
		return Multiply, nil
	case "/", GlyphDivide:
		return Divide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
}

// Glyph returns the human-readable symbol shown in the expression
func (o Operator) Glyph() string {
	switch o {
	case Add:
		return GlyphAdd
	case Subtract:
		return GlyphSubtract
	case Multiply:
		return GlyphMultiply
	case Divide:
		return GlyphDivide
	default:
		return "?"
	}
}

// Symbol returns the ASCII arithmetic symbol
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the four supported operators
func (o Operator) Valid() bool {
	return o >= Add && o <= Divide
}

// apply performs the arithmetic for the operator
func (o Operator) apply(left, right float64) (float64, error) {
	switch o {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		if right == 0 {
			return 0, errDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, int(o))
	}
}
