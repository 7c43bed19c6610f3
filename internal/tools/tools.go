package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names, before the configured prefix is applied
const (
	ToolInputDigit    = "input_digit"
	ToolInputDecimal  = "input_decimal"
	ToolInputOperator = "input_operator"
	ToolEvaluate      = "evaluate"
	ToolClear         = "clear"
	ToolClearEntry    = "clear_entry"
	ToolBackspace     = "backspace"
	ToolClearHistory  = "clear_history"
	ToolGetState      = "get_state"
	ToolGetHistory    = "get_history"
	ToolPressKeys     = "press_keys"
)

// Session gives tools serialized access to the calculator engine
type Session interface {
	Do(operation string, fn func(e *calculator.Engine) error) (calculator.State, error)
	Snapshot() calculator.State
}

// Tool is implemented by every calculator tool
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool, in registration order
func All(session Session, config types.Config) []Tool {
	return []Tool{
		NewInputDigitTool(session, config),
		NewInputDecimalTool(session, config),
		NewInputOperatorTool(session, config),
		NewEvaluateTool(session, config),
		NewClearTool(session, config),
		NewClearEntryTool(session, config),
		NewBackspaceTool(session, config),
		NewClearHistoryTool(session, config),
		NewGetStateTool(session, config),
		NewGetHistoryTool(session, config),
		NewPressKeysTool(session, config),
	}
}

// toolName applies the configured prefix to a tool name
func toolName(config types.Config, name string) string {
	return config.ToolPrefix + name
}

// applyOperation runs a calculator operation and returns the resulting state as a tool result
func applyOperation(session Session, operation string, fn func(e *calculator.Engine) error) (*mcp.CallToolResult, error) {
	state, err := session.Do(operation, fn)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply %s: %v", operation, err)), nil
	}
	return jsonResult(results.NewCalculatorStateResult(state))
}

// jsonResult marshals a result struct into indented JSON text content
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
