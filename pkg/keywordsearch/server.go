// Package keywordsearch exposes the keyword scanner as MCP tools
package keywordsearch

import (
	"context"

	"github.com/KyleBrandon/keyword-search/pkg/scanner"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "keyword-search-server"
	ServerVersion = "1.0.0"
)

type SearchServer struct {
	ctx       context.Context
	McpServer *server.MCPServer
	scanner   *scanner.Scanner
	tools     map[string]server.ToolHandlerFunc
}

// NewSearchServer creates the MCP server and registers the search tools. Relative
// paths passed to the tools are resolved against baseDir, or the working
// directory when baseDir is empty.
func NewSearchServer(ctx context.Context, baseDir string, opts ...server.ServerOption) *SearchServer {
	ks := &SearchServer{
		ctx:     ctx,
		scanner: scanner.New(baseDir),
		tools:   make(map[string]server.ToolHandlerFunc),
	}

	serverOptions := append([]server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithToolHandlerMiddleware(logToolCalls),
	}, opts...)

	ks.McpServer = server.NewMCPServer(ServerName, ServerVersion, serverOptions...)
	ks.addTools()

	return ks
}

// addTools adds all the tools to the server
func (ks *SearchServer) addTools() {
	ks.NewSearchFileTool()
	ks.NewSearchDirectoryTool()
}
