package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	session   *session.Manager
	config    *types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(config *types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CalcServer{
		mcpServer: mcpServer,
		session:   session.NewManager(),
		config:    config,
	}
	s.registerTools()

	return s
}

// Start serves MCP requests over stdio until the client disconnects
func (s *CalcServer) Start(ctx context.Context) error {
	slog.Info("Starting calculator MCP server",
		"name", project.Name,
		"version", project.Version,
		"tool_prefix", s.config.ToolPrefix)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

// MCPServer returns the underlying MCP server, mainly for in-process clients
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.All(s.session, *s.config) {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, withCallLogging(definition.Name, tool.Handle))
		slog.Debug("Registered tool", "tool", definition.Name)
	}
}

// withCallLogging tags each tool call with an id and logs its outcome
func withCallLogging(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		startTime := time.Now()

		slog.Debug("Handling tool call", "call_id", callID, "tool", name)

		result, err := next(ctx, req)

		duration := time.Since(startTime)
		switch {
		case err != nil:
			slog.Error("Tool call failed",
				"call_id", callID,
				"tool", name,
				"error", err,
				"duration_ms", duration.Milliseconds())
		case result != nil && result.IsError:
			slog.Info("Tool call rejected",
				"call_id", callID,
				"tool", name,
				"duration_ms", duration.Milliseconds())
		default:
			slog.Debug("Tool call completed",
				"call_id", callID,
				"tool", name,
				"duration_ms", duration.Milliseconds())
		}

		return result, err
	}
}
