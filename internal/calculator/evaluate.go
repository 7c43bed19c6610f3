package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var glyphNormalizer = strings.NewReplacer(
	GlyphMultiply, "*",
	GlyphDivide, "/",
	GlyphSubtract, "-",
)

// evaluate computes a single "left op right" infix expression.
// Operands are separated from the operator by whitespace; glyphs are normalized first.
func evaluate(expression string) (float64, error) {
	fields := strings.Fields(glyphNormalizer.Replace(expression))
	if len(fields) != 3 {
		return 0, newEvaluationError(expression,
			fmt.Errorf("%w: expected 3 terms, got %d", errMalformed, len(fields)))
	}

	left, err := parseOperand(fields[0])
	if err != nil {
		return 0, newEvaluationError(expression, err)
	}

	op, err := ParseOperator(fields[1])
	if err != nil {
		return 0, newEvaluationError(expression, err)
	}

	right, err := parseOperand(fields[2])
	if err != nil {
		return 0, newEvaluationError(expression, err)
	}

	result, err := op.apply(left, right)
	if err != nil {
		return 0, newEvaluationError(expression, err)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, newEvaluationError(expression, errNotFinite)
	}

	return result, nil
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q", errMalformed, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: operand %q", errMalformed, s)
	}
	return v, nil
}

// formatNumber renders a result the way the calculator display shows numbers:
// plain decimal for 1e-6 <= |x| < 1e21, exponent notation otherwise, and no negative zero.
func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}

	abs := math.Abs(x)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + digits
}
