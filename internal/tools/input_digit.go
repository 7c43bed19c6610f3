package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputDigitTool handles digit key presses
type InputDigitTool struct {
	session Session
	config  types.Config
}

// NewInputDigitTool creates a new input digit tool
func NewInputDigitTool(session Session, config types.Config) *InputDigitTool {
	return &InputDigitTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *InputDigitTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolInputDigit),
		mcp.WithDescription("Press a digit key. Starts a new operand after an operator or result, otherwise appends to the display"),
		mcp.WithString("digit", mcp.Required(), mcp.Description("A single digit from 0 to 9")),
	)
	return tool
}

// Handle processes the tool request
func (t *InputDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit := mcp.ParseString(req, "digit", "")
	if digit == "" {
		return mcp.NewToolResultError("digit parameter is required"), nil
	}

	return applyOperation(t.session, ToolInputDigit, func(e *calculator.Engine) error {
		return e.InputDigit(digit)
	})
}
