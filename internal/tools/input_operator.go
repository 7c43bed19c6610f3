package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputOperatorTool handles operator key presses
type InputOperatorTool struct {
	session Session
	config  types.Config
}

// NewInputOperatorTool creates a new input operator tool
func NewInputOperatorTool(session Session, config types.Config) *InputOperatorTool {
	return &InputOperatorTool{
		session: session,
		config:  config,
	}
}

// GetTool returns the MCP tool definition
func (t *InputOperatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(toolName(t.config, ToolInputOperator),
		mcp.WithDescription("Press an operator key. Operations chain left to right without precedence, "+
			"so 2 + 3 × 4 evaluates as (2 + 3) × 4 = 20"),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("Operator symbol"),
			mcp.Enum("+", "-", "*", "/", calculator.GlyphSubtract, calculator.GlyphMultiply, calculator.GlyphDivide),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *InputOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := mcp.ParseString(req, "operator", "")
	if symbol == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, err := calculator.ParseOperator(symbol)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return applyOperation(t.session, ToolInputOperator, func(e *calculator.Engine) error {
		e.InputOperator(op)
		return nil
	})
}
