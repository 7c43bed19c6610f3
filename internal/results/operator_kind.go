package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// OperatorKind represents the pending operator as an enum
type OperatorKind string

const (
	OperatorKindAdd      OperatorKind = "add"
	OperatorKindSubtract OperatorKind = "subtract"
	OperatorKindMultiply OperatorKind = "multiply"
	OperatorKindDivide   OperatorKind = "divide"
	OperatorKindNone     OperatorKind = "none"
)

var operatorKindMap = map[calculator.Operator]OperatorKind{
	calculator.Add:      OperatorKindAdd,
	calculator.Subtract: OperatorKindSubtract,
	calculator.Multiply: OperatorKindMultiply,
	calculator.Divide:   OperatorKindDivide,
}

// NewOperatorKind returns the OperatorKind for a calculator operator
func NewOperatorKind(op calculator.Operator) OperatorKind {
	kind, ok := operatorKindMap[op]
	if !ok {
		return OperatorKindNone
	}
	return kind
}
