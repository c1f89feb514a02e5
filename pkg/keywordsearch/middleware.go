package keywordsearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// logToolCalls logs the start and outcome of every tool call under a shared call id
func logToolCalls(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		start := time.Now()

		slog.Info("tool call", "call_id", callID, "tool", req.Params.Name)

		result, err := next(ctx, req)

		slog.Info("tool call finished",
			"call_id", callID,
			"tool", req.Params.Name,
			"duration", time.Since(start),
			"is_error", err != nil || (result != nil && result.IsError))

		return result, err
	}
}
