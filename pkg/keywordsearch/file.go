package keywordsearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

const SearchFileToolName = "search_keyword_in_file"

type SearchFileRequest struct {
	FilePath      string `json:"filePath" mcp:"Path to the file to search in (absolute or relative path)"`
	Keyword       string `json:"keyword" mcp:"Keyword or phrase to search for"`
	CaseSensitive bool   `json:"caseSensitive,omitempty" mcp:"Whether search should be case-sensitive (default: false)"`
}

func (ks *SearchServer) NewSearchFileTool() {
	tool := mcp.NewTool(
		SearchFileToolName,
		mcp.WithDescription("Search for a keyword in a specific file and return all matching lines with positions. Returns line numbers, content context, and exact match positions within each line."),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Path to the file to search in (absolute or relative path)"),
		),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Keyword or phrase to search for"),
		),
		mcp.WithBoolean("caseSensitive",
			mcp.Description("Whether search should be case-sensitive (default: false)"),
			mcp.DefaultBool(false),
		),
	)

	ks.addTool(tool, ks.handleSearchFile)
}

func (ks *SearchServer) handleSearchFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := parseSearchFileRequest(req.GetArguments())
	if err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", SearchFileToolName, err)
	}

	return ks.SearchKeywordInFile(ctx, req, params)
}

func parseSearchFileRequest(args map[string]any) (SearchFileRequest, error) {
	var params SearchFileRequest
	var err error

	if params.FilePath, err = requiredString(args, "filePath"); err != nil {
		return params, err
	}
	if params.Keyword, err = requiredString(args, "keyword"); err != nil {
		return params, err
	}

	if raw, ok := args["caseSensitive"]; ok && raw != nil {
		if params.CaseSensitive, err = cast.ToBoolE(raw); err != nil {
			return params, fmt.Errorf("%w: 'caseSensitive' must be a boolean", ErrInvalidArgument)
		}
	}

	return params, nil
}

// SearchKeywordInFile searches a single file and returns the SearchResult as JSON
func (ks *SearchServer) SearchKeywordInFile(ctx context.Context, req mcp.CallToolRequest, params SearchFileRequest) (*mcp.CallToolResult, error) {
	result, err := ks.scanner.ScanFile(params.FilePath, params.Keyword, params.CaseSensitive)
	if err != nil {
		slog.Error("Failed to search file", "filePath", params.FilePath, "error", err)
		return nil, err
	}

	slog.Debug("searched file", "filePath", result.FilePath, "count", result.Count, "totalLines", result.TotalLines)

	return jsonResult(result)
}
