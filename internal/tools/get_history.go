package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetHistoryTool handles calculation history requests
type GetHistoryTool struct {
	session Session
	config  types.Config
}

// NewGetHistoryTool creates a new get history tool
func NewGetHistoryTool(session Session, config types.Config) *GetHistoryTool {
	return &GetHistoryTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolGetHistory),
		mcp.WithDescription("Get up to the last 10 completed calculations, most recent first"),
	)
	return tool
}

// Handle processes the tool request
func (t *GetHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewHistoryResult(t.session.Snapshot().History))
}
