package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/KyleBrandon/keyword-search/pkg/json"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func main() {
	// Define command line flags
	server := flag.String("server", "", "Server command to execute")
	tool := flag.String("tool", "", "Tool to call (lists the tools when empty)")
	toolArgs := flag.String("args", "{}", "Tool arguments as a JSON object")
	flag.Parse()

	if *server == "" {
		fmt.Println("Error: You must specify the --server <server> [--tool <name> --args <json>] [-- server args]")
		flag.Usage()
		os.Exit(1)
	}

	arguments, err := parseToolArgs(*toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := client.NewStdioMCPClient(*server, nil, flag.Args()...)
	if err != nil {
		slog.Error("Failed to create new client", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "keyword-search-client",
		Version: "1.0.0",
	}

	initResult, err := c.Initialize(ctx, initRequest)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	fmt.Fprintf(os.Stderr,
		"Initialized with server: %s %s\n",
		initResult.ServerInfo.Name,
		initResult.ServerInfo.Version,
	)

	if *tool == "" {
		tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			log.Fatalf("Failed to list tools: %v", err)
		}
		for _, t := range tools.Tools {
			fmt.Printf("- %s: %s\n", t.Name, t.Description)
		}
		return
	}

	result, err := c.CallTool(ctx, newCallToolRequest(*tool, arguments))
	if err != nil {
		slog.Error("Failed to call tool", "tool", *tool, "error", err)
		os.Exit(1)
	}

	printToolResult(os.Stdout, result)
	if result.IsError {
		os.Exit(2)
	}
}

// parseToolArgs decodes the --args flag, which must hold a JSON object
func parseToolArgs(raw string) (map[string]any, error) {
	arguments := map[string]any{}
	if raw == "" {
		return arguments, nil
	}

	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, fmt.Errorf("invalid --args, expected a JSON object: %w", err)
	}

	return arguments, nil
}

func newCallToolRequest(name string, arguments map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = arguments
	return req
}

// Helper function to print tool results
func printToolResult(w io.Writer, result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			fmt.Fprintln(w, textContent.Text)
		} else {
			jsonBytes, _ := json.MarshalIndent(content, "", "  ")
			fmt.Fprintln(w, string(jsonBytes))
		}
	}
}
