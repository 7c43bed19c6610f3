package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearHistoryTool handles clear history requests
type ClearHistoryTool struct {
	session Session
	config  types.Config
}

// NewClearHistoryTool creates a new clear history tool
func NewClearHistoryTool(session Session, config types.Config) *ClearHistoryTool {
	return &ClearHistoryTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolClearHistory),
		mcp.WithDescription("Remove every calculation from the history log. The display is left unchanged"),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := t.session.Do(ToolClearHistory, func(e *calculator.Engine) error {
		e.ClearHistory()
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear history: %v", err)), nil
	}

	return jsonResult(results.NewHistoryResult(state.History))
}
