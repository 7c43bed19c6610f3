package results

import (
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// CalculatorStateResult represents the calculator state returned by every mutating tool
type CalculatorStateResult struct {
	Display         string       `json:"display"`
	Expression      string       `json:"expression"`
	PendingOperator OperatorKind `json:"pending_operator"`
	AwaitingOperand bool         `json:"awaiting_operand"`
	Message         string       `json:"message"`
}

// NewCalculatorStateResult builds a result from an engine snapshot
func NewCalculatorStateResult(state calculator.State) CalculatorStateResult {
	result := CalculatorStateResult{
		Display:         state.Display,
		Expression:      state.Expression,
		PendingOperator: NewOperatorKind(state.PendingOperator),
		AwaitingOperand: state.AwaitingOperand,
	}

	switch {
	case state.Err != nil:
		result.Message = fmt.Sprintf("Evaluation failed and the calculator was cleared: %v", state.Err)
	case state.HasPendingOperator():
		result.Message = fmt.Sprintf("Waiting for the right operand of %q.", state.Expression)
	default:
		result.Message = fmt.Sprintf("Display shows %s.", state.Display)
	}

	return result
}
