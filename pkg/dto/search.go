package dto

// LineMatch is a single line of a file that contains the keyword at least once
type LineMatch struct {
	LineNumber     int    `json:"lineNumber"`
	Content        string `json:"content"`
	MatchPositions []int  `json:"matchPositions"`
}

// SearchResult represents the outcome of scanning one file
type SearchResult struct {
	Found       bool        `json:"found"`
	Count       int         `json:"count"`
	LineMatches []LineMatch `json:"lineMatches"`
	FileName    string      `json:"fileName"`
	FilePath    string      `json:"filePath"`
	TotalLines  int         `json:"totalLines"`
}

// DirectorySearchResult is the envelope returned by a directory search
type DirectorySearchResult struct {
	TotalFilesMatched int            `json:"totalFilesMatched"`
	Results           []SearchResult `json:"results"`
}

// NewDirectorySearchResult wraps the per-file results, keeping the count in step with the slice
func NewDirectorySearchResult(results []SearchResult) DirectorySearchResult {
	if results == nil {
		results = []SearchResult{}
	}

	return DirectorySearchResult{
		TotalFilesMatched: len(results),
		Results:           results,
	}
}
