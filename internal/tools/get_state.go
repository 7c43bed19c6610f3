package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStateTool handles calculator state requests
type GetStateTool struct {
	session Session
	config  types.Config
}

// NewGetStateTool creates a new get state tool
func NewGetStateTool(session Session, config types.Config) *GetStateTool {
	return &GetStateTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetStateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolGetState),
		mcp.WithDescription("Get the calculator display, the pending expression and whether the next digit starts a new operand"),
	)
	return tool
}

// Handle processes the tool request
func (t *GetStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewCalculatorStateResult(t.session.Snapshot()))
}
