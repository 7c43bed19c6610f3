package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputDecimalTool handles decimal point key presses
type InputDecimalTool struct {
	session Session
	config  types.Config
}

// NewInputDecimalTool creates a new input decimal tool
func NewInputDecimalTool(session Session, config types.Config) *InputDecimalTool {
	return &InputDecimalTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *InputDecimalTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolInputDecimal),
		mcp.WithDescription("Press the decimal point key. Has no effect if the operand already contains a decimal point"),
	)
	return tool
}

// Handle processes the tool request
func (t *InputDecimalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return applyOperation(t.session, ToolInputDecimal, func(e *calculator.Engine) error {
		e.InputDecimal()
		return nil
	})
}
