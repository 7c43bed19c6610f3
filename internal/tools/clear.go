package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearTool handles the clear key
type ClearTool struct {
	session Session
	config  types.Config
}

// NewClearTool creates a new clear tool
func NewClearTool(session Session, config types.Config) *ClearTool {
	return &ClearTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolClear),
		mcp.WithDescription("Press the C key. Resets the display and any pending operation but keeps the history"),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return applyOperation(t.session, ToolClear, func(e *calculator.Engine) error {
		e.Clear()
		return nil
	})
}
