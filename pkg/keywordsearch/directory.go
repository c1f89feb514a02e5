package keywordsearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KyleBrandon/keyword-search/pkg/dto"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

const SearchDirectoryToolName = "search_keyword_in_directory"

type SearchDirectoryRequest struct {
	DirPath       string `json:"dirPath" mcp:"Path to the directory to search in"`
	Keyword       string `json:"keyword" mcp:"Keyword or phrase to search for"`
	FileExtension string `json:"fileExtension,omitempty" mcp:"Optional file extension filter"`
}

func (ks *SearchServer) NewSearchDirectoryTool() {
	tool := mcp.NewTool(
		SearchDirectoryToolName,
		mcp.WithDescription("Search for a keyword across multiple files in a directory. Scans all .txt, .log, and .md files and returns results only from files containing matches."),
		mcp.WithString("dirPath",
			mcp.Required(),
			mcp.Description("Path to the directory to search in"),
		),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Keyword or phrase to search for"),
		),
		mcp.WithString("fileExtension",
			mcp.Description("Optional file extension filter (e.g., '.txt', '.log'). If not specified, searches all supported file types."),
			mcp.DefaultString(""),
		),
	)

	ks.addTool(tool, ks.handleSearchDirectory)
}

func (ks *SearchServer) handleSearchDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := parseSearchDirectoryRequest(req.GetArguments())
	if err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", SearchDirectoryToolName, err)
	}

	return ks.SearchKeywordInDirectory(ctx, req, params)
}

func parseSearchDirectoryRequest(args map[string]any) (SearchDirectoryRequest, error) {
	var params SearchDirectoryRequest
	var err error

	if params.DirPath, err = requiredString(args, "dirPath"); err != nil {
		return params, err
	}
	if params.Keyword, err = requiredString(args, "keyword"); err != nil {
		return params, err
	}

	if raw, ok := args["fileExtension"]; ok && raw != nil {
		if params.FileExtension, err = cast.ToStringE(raw); err != nil {
			return params, fmt.Errorf("%w: 'fileExtension' must be a string", ErrInvalidArgument)
		}
	}

	return params, nil
}

// SearchKeywordInDirectory searches the supported files of a directory and
// returns the files with matches wrapped in a DirectorySearchResult
func (ks *SearchServer) SearchKeywordInDirectory(ctx context.Context, req mcp.CallToolRequest, params SearchDirectoryRequest) (*mcp.CallToolResult, error) {
	results, err := ks.scanner.ScanDirectory(params.DirPath, params.Keyword, params.FileExtension)
	if err != nil {
		slog.Error("Failed to search directory", "dirPath", params.DirPath, "error", err)
		return nil, err
	}

	slog.Debug("searched directory", "dirPath", params.DirPath, "filesMatched", len(results))

	return jsonResult(dto.NewDirectorySearchResult(results))
}
