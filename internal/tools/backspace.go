package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// BackspaceTool handles the backspace key
type BackspaceTool struct {
	session Session
	config  types.Config
}

// NewBackspaceTool creates a new backspace tool
func NewBackspaceTool(session Session, config types.Config) *BackspaceTool {
	return &BackspaceTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *BackspaceTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolBackspace),
		mcp.WithDescription("Press the backspace key. Removes the last character of the display"),
	)
	return tool
}

// Handle processes the tool request
func (t *BackspaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return applyOperation(t.session, ToolBackspace, func(e *calculator.Engine) error {
		e.Backspace()
		return nil
	})
}
