package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles key script requests
type PressKeysTool struct {
	session Session
	config  types.Config
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(session Session, config types.Config) *PressKeysTool {
	return &PressKeysTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolPressKeys),
		mcp.WithDescription("Press a sequence of calculator keys in one call and return the resulting state and history. "+
			"Keys: digits, '.', '+', '-', '*', '/', '−', '×', '÷', '=', 'C' (clear), 'CE' or 'E' (clear entry), "+
			"'<' or '⌫' (backspace), 'H' (clear history). Whitespace is ignored"),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Key script, for example \"12.5 × 2 =\"")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := mcp.ParseString(req, "keys", "")
	if script == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	keys, err := keypad.Parse(script)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse keys: %v", err)), nil
	}

	state, err := t.session.Do(ToolPressKeys, func(e *calculator.Engine) error {
		return keypad.Press(e, keys)
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	return jsonResult(results.PressKeysResult{
		Keys:    keypad.Format(keys),
		Count:   len(keys),
		State:   results.NewCalculatorStateResult(state),
		History: results.NewHistoryResult(state.History),
	})
}
