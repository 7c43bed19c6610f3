package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(name string, arguments map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func call(t *testing.T, tool Tool, arguments map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	result, err := tool.Handle(context.Background(), newRequest(tool.GetTool().Name, arguments))
	require.NoError(t, err, "tool errors are reported in the result")
	return result
}

func callState(t *testing.T, tool Tool, arguments map[string]interface{}) results.CalculatorStateResult {
	t.Helper()
	result := call(t, tool, arguments)
	require.False(t, result.IsError, "unexpected tool error: %s", resultText(t, result))

	var state results.CalculatorStateResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &state))
	return state
}

func TestToolNames(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected []string
	}{
		{
			name:   "No prefix",
			prefix: "",
			expected: []string{
				"input_digit", "input_decimal", "input_operator", "evaluate", "clear", "clear_entry",
				"backspace", "clear_history", "get_state", "get_history", "press_keys",
			},
		},
		{
			name:   "With prefix",
			prefix: "calc.",
			expected: []string{
				"calc.input_digit", "calc.input_decimal", "calc.input_operator", "calc.evaluate", "calc.clear",
				"calc.clear_entry", "calc.backspace", "calc.clear_history", "calc.get_state", "calc.get_history",
				"calc.press_keys",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := All(session.NewManager(), types.Config{ToolPrefix: tt.prefix})
			names := make([]string, 0, len(all))
			for _, tool := range all {
				names = append(names, tool.GetTool().Name)
				assert.NotEmpty(t, tool.GetTool().Description)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestRequiredArguments(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}

	tests := []struct {
		name    string
		tool    Tool
		message string
	}{
		{name: "Digit", tool: NewInputDigitTool(manager, config), message: "digit parameter is required"},
		{name: "Operator", tool: NewInputOperatorTool(manager, config), message: "operator parameter is required"},
		{name: "Keys", tool: NewPressKeysTool(manager, config), message: "keys parameter is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.tool.GetTool().InputSchema.Required, 1)

			result := call(t, tt.tool, map[string]interface{}{})
			assert.True(t, result.IsError)
			assert.Equal(t, tt.message, resultText(t, result))
		})
	}
}

func TestInputDigitTool(t *testing.T) {
	manager := session.NewManager()
	tool := NewInputDigitTool(manager, types.Config{})

	callState(t, tool, map[string]interface{}{"digit": "0"})
	state := callState(t, tool, map[string]interface{}{"digit": "5"})
	assert.Equal(t, "5", state.Display)
	assert.False(t, state.AwaitingOperand)
	assert.Equal(t, results.OperatorKindNone, state.PendingOperator)

	result := call(t, tool, map[string]interface{}{"digit": "x"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid digit")
	assert.Equal(t, "5", manager.Snapshot().Display)
}

func TestInputOperatorTool(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}
	digit := NewInputDigitTool(manager, config)
	operator := NewInputOperatorTool(manager, config)

	callState(t, digit, map[string]interface{}{"digit": "6"})

	tests := []struct {
		symbol     string
		expression string
		kind       results.OperatorKind
	}{
		{symbol: "+", expression: "6 + ", kind: results.OperatorKindAdd},
		{symbol: "-", expression: "6 − ", kind: results.OperatorKindSubtract},
		{symbol: "×", expression: "6 × ", kind: results.OperatorKindMultiply},
		{symbol: "/", expression: "6 ÷ ", kind: results.OperatorKindDivide},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			state := callState(t, operator, map[string]interface{}{"operator": tt.symbol})
			assert.Equal(t, tt.expression, state.Expression)
			assert.Equal(t, tt.kind, state.PendingOperator)
			assert.True(t, state.AwaitingOperand)
		})
	}

	result := call(t, operator, map[string]interface{}{"operator": "%"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown operator")
}

func TestCalculationThroughTools(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}
	digit := NewInputDigitTool(manager, config)
	decimal := NewInputDecimalTool(manager, config)
	operator := NewInputOperatorTool(manager, config)
	evaluate := NewEvaluateTool(manager, config)

	callState(t, digit, map[string]interface{}{"digit": "1"})
	callState(t, decimal, nil)
	callState(t, digit, map[string]interface{}{"digit": "5"})
	callState(t, operator, map[string]interface{}{"operator": "+"})
	callState(t, digit, map[string]interface{}{"digit": "2"})
	state := callState(t, evaluate, nil)

	assert.Equal(t, "3.5", state.Display)
	assert.Equal(t, "", state.Expression)
	assert.Equal(t, "Display shows 3.5.", state.Message)

	history := manager.Snapshot().History
	require.Len(t, history, 1)
	assert.Equal(t, "1.5 + 2", history[0].Expression)
}

func TestEvaluateToolReportsFailure(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}
	digit := NewInputDigitTool(manager, config)
	operator := NewInputOperatorTool(manager, config)
	evaluate := NewEvaluateTool(manager, config)

	callState(t, digit, map[string]interface{}{"digit": "5"})
	callState(t, operator, map[string]interface{}{"operator": "/"})
	callState(t, digit, map[string]interface{}{"digit": "0"})
	state := callState(t, evaluate, nil)

	assert.Equal(t, "0", state.Display)
	assert.Equal(t, "", state.Expression)
	assert.Contains(t, state.Message, "Evaluation failed")
	assert.Contains(t, state.Message, "division by zero")
	assert.Empty(t, manager.Snapshot().History)
}

func TestClearTools(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}
	press := NewPressKeysTool(manager, config)

	call(t, press, map[string]interface{}{"keys": "8-123"})

	state := callState(t, NewBackspaceTool(manager, config), nil)
	assert.Equal(t, "12", state.Display)

	state = callState(t, NewClearEntryTool(manager, config), nil)
	assert.Equal(t, "0", state.Display)
	assert.Equal(t, "8 − ", state.Expression)

	state = callState(t, NewClearTool(manager, config), nil)
	assert.Equal(t, "0", state.Display)
	assert.Equal(t, "", state.Expression)
	assert.Equal(t, results.OperatorKindNone, state.PendingOperator)
}

func TestHistoryTools(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}

	call(t, NewPressKeysTool(manager, config), map[string]interface{}{"keys": "1+1=2×3="})

	result := call(t, NewGetHistoryTool(manager, config), nil)
	require.False(t, result.IsError)
	var history results.HistoryResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &history))
	assert.Equal(t, 2, history.Count)
	assert.Equal(t, []results.HistoryEntryResult{
		{Expression: "2 × 3", Result: "6"},
		{Expression: "1 + 1", Result: "2"},
	}, history.Entries)

	result = call(t, NewClearHistoryTool(manager, config), nil)
	require.False(t, result.IsError)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &history))
	assert.Equal(t, 0, history.Count)
	assert.Empty(t, history.Entries)
	assert.Equal(t, "6", manager.Snapshot().Display)
}

func TestGetStateTool(t *testing.T) {
	manager := session.NewManager()
	config := types.Config{}

	call(t, NewPressKeysTool(manager, config), map[string]interface{}{"keys": "9÷"})

	state := callState(t, NewGetStateTool(manager, config), nil)
	assert.Equal(t, "9", state.Display)
	assert.Equal(t, "9 ÷ ", state.Expression)
	assert.Equal(t, results.OperatorKindDivide, state.PendingOperator)
	assert.True(t, state.AwaitingOperand)
	assert.Equal(t, `Waiting for the right operand of "9 ÷ ".`, state.Message)
}

func TestPressKeysTool(t *testing.T) {
	tests := []struct {
		name      string
		keys      string
		display   string
		count     int
		formatted string
		history   int
	}{
		{name: "Left to right chaining", keys: "2+3*4=", display: "20", count: 6, formatted: "2 + 3 × 4 =", history: 2},
		{name: "Division by zero", keys: "5/0=", display: "0", count: 4, formatted: "5 ÷ 0 =", history: 0},
		{name: "Backspace", keys: "7<", display: "0", count: 2, formatted: "7 ⌫", history: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewPressKeysTool(session.NewManager(), types.Config{})

			result := call(t, tool, map[string]interface{}{"keys": tt.keys})
			require.False(t, result.IsError, resultText(t, result))

			var pressed results.PressKeysResult
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &pressed))
			assert.Equal(t, tt.display, pressed.State.Display)
			assert.Equal(t, tt.count, pressed.Count)
			assert.Equal(t, tt.formatted, pressed.Keys)
			assert.Equal(t, tt.history, pressed.History.Count)
		})
	}
}

func TestPressKeysToolRejectsUnknownKey(t *testing.T) {
	manager := session.NewManager()
	tool := NewPressKeysTool(manager, types.Config{})

	result := call(t, tool, map[string]interface{}{"keys": "12%3"})
	assert.True(t, result.IsError)
	assert.Equal(t, `Failed to parse keys: unknown key "%" at position 2`, resultText(t, result))
	assert.Equal(t, "0", manager.Snapshot().Display, "nothing is pressed when the script is invalid")
}
