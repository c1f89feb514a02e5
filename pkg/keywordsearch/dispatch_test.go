package keywordsearch

import (
	"context"
	"strings"
	"testing"
)

func TestDispatch(t *testing.T) {
	tempDir := createTestDir(t, map[string]string{
		"notes.md": "alpha beta\nBETA",
	})

	ks := NewSearchServer(context.Background(), tempDir)

	tests := []struct {
		name        string
		tool        string
		args        map[string]any
		wantError   bool
		wantContain string
	}{
		{
			name:        "file search",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "notes.md", "keyword": "beta"},
			wantContain: `"count": 2`,
		},
		{
			name:        "file search case sensitive",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "notes.md", "keyword": "beta", "caseSensitive": true},
			wantContain: `"count": 1`,
		},
		{
			name:        "case sensitive as string",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "notes.md", "keyword": "BETA", "caseSensitive": "true"},
			wantContain: `"count": 1`,
		},
		{
			name:        "directory search",
			tool:        SearchDirectoryToolName,
			args:        map[string]any{"dirPath": ".", "keyword": "alpha"},
			wantContain: `"totalFilesMatched": 1`,
		},
		{
			name:        "directory search with filter",
			tool:        SearchDirectoryToolName,
			args:        map[string]any{"dirPath": ".", "keyword": "alpha", "fileExtension": ".txt"},
			wantContain: `"totalFilesMatched": 0`,
		},
		{
			name:        "unknown tool",
			tool:        "delete_everything",
			args:        map[string]any{},
			wantError:   true,
			wantContain: "Error: unknown tool: delete_everything",
		},
		{
			name:        "missing arguments",
			tool:        SearchFileToolName,
			args:        nil,
			wantError:   true,
			wantContain: "Error: missing request arguments",
		},
		{
			name:        "missing keyword",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "notes.md"},
			wantError:   true,
			wantContain: "'keyword' is required",
		},
		{
			name:        "empty keyword",
			tool:        SearchDirectoryToolName,
			args:        map[string]any{"dirPath": ".", "keyword": ""},
			wantError:   true,
			wantContain: "'keyword' must not be empty",
		},
		{
			name:        "non string path",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": 42, "keyword": "x"},
			wantError:   true,
			wantContain: "'filePath' must be a string",
		},
		{
			name:        "bad case sensitive flag",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "notes.md", "keyword": "x", "caseSensitive": "maybe"},
			wantError:   true,
			wantContain: "'caseSensitive' must be a boolean",
		},
		{
			name:        "file not found",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": "missing.md", "keyword": "x"},
			wantError:   true,
			wantContain: "Error: file not found: missing.md",
		},
		{
			name:        "file is a directory",
			tool:        SearchFileToolName,
			args:        map[string]any{"filePath": ".", "keyword": "x"},
			wantError:   true,
			wantContain: "Error: path is not a file: .",
		},
		{
			name:        "directory not found",
			tool:        SearchDirectoryToolName,
			args:        map[string]any{"dirPath": "nowhere", "keyword": "x"},
			wantError:   true,
			wantContain: "Error: directory not found: nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ks.Dispatch(context.Background(), callRequest(tt.tool, tt.args))
			if err != nil {
				t.Fatalf("Dispatch should never return a Go error, got %v", err)
			}

			if result.IsError != tt.wantError {
				t.Errorf("Expected IsError=%v, got %v", tt.wantError, result.IsError)
			}

			text := resultText(t, result)
			if tt.wantError && !strings.HasPrefix(text, "Error: ") {
				t.Errorf("Expected error text to start with 'Error: ', got %q", text)
			}

			if !strings.Contains(text, tt.wantContain) {
				t.Errorf("Expected %q in output:\n%s", tt.wantContain, text)
			}
		})
	}
}

func TestRequiredString(t *testing.T) {
	args := map[string]any{"a": "value", "b": "", "c": true}

	if v, err := requiredString(args, "a"); err != nil || v != "value" {
		t.Errorf("Expected value, got %q, %v", v, err)
	}

	for _, name := range []string{"b", "c", "missing"} {
		if _, err := requiredString(args, name); err == nil {
			t.Errorf("Expected error for %s", name)
		}
	}
}
