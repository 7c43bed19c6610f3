package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateTool handles the equals key
type EvaluateTool struct {
	session Session
	config  types.Config
}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool(session Session, config types.Config) *EvaluateTool {
	return &EvaluateTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolEvaluate),
		mcp.WithDescription("Press the equals key. Applies the pending operator and records the calculation in history. "+
			"Division by zero clears the calculator"),
	)
	return tool
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return applyOperation(t.session, ToolEvaluate, func(e *calculator.Engine) error {
		e.Evaluate()
		return nil
	})
}
