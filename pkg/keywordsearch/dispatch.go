package keywordsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KyleBrandon/keyword-search/pkg/json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrMissingArguments = errors.New("missing request arguments")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// addTool records the handler in the dispatch table and registers the tool
// with the MCP server. Every registered tool is served by Dispatch.
func (ks *SearchServer) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	ks.tools[tool.Name] = handler
	ks.McpServer.AddTool(tool, ks.Dispatch)
}

// Dispatch looks up the handler for the requested tool and runs it. Any
// failure is returned as an error result with an "Error: " prefix rather than
// as a protocol error.
func (ks *SearchServer) Dispatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.Params.Name

	handler, ok := ks.tools[name]
	if !ok {
		return errorResult(fmt.Errorf("%w: %s", ErrUnknownTool, name)), nil
	}

	if req.Params.Arguments == nil {
		return errorResult(ErrMissingArguments), nil
	}

	result, err := handler(ctx, req)
	if err != nil {
		slog.Error("tool call failed", "tool", name, "error", err)
		return errorResult(err), nil
	}

	return result, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err.Error()))
}

// jsonResult encodes v as indented JSON text content
func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search results: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(result)),
		},
	}, nil
}

// requiredString returns the named argument, which must be a non-empty string
func requiredString(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%w: '%s' is required", ErrInvalidArgument, name)
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: '%s' must be a string", ErrInvalidArgument, name)
	}

	if value == "" {
		return "", fmt.Errorf("%w: '%s' must not be empty", ErrInvalidArgument, name)
	}

	return value, nil
}
