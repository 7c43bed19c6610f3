package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearEntryTool handles the clear entry key
type ClearEntryTool struct {
	session Session
	config  types.Config
}

// NewClearEntryTool creates a new clear entry tool
func NewClearEntryTool(session Session, config types.Config) *ClearEntryTool {
	return &ClearEntryTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearEntryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolClearEntry),
		mcp.WithDescription("Press the CE key. Resets only the operand being entered and keeps any pending operation"),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearEntryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return applyOperation(t.session, ToolClearEntry, func(e *calculator.Engine) error {
		e.ClearEntry()
		return nil
	})
}
