// Package scanner implements the literal keyword search over text files
package scanner

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KyleBrandon/keyword-search/pkg/dto"
	"github.com/KyleBrandon/keyword-search/pkg/utils"
)

// MaxContentLength is the number of characters of a matching line kept in a LineMatch
const MaxContentLength = 200

// Scanner searches files for a keyword. Relative paths are resolved against BaseDir.
type Scanner struct {
	BaseDir string
}

func New(baseDir string) *Scanner {
	return &Scanner{BaseDir: baseDir}
}

// ScanFile reads the whole file at path and reports every occurrence of keyword.
func (s *Scanner) ScanFile(path, keyword string, caseSensitive bool) (*dto.SearchResult, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	fullPath, err := utils.ResolvePath(s.BaseDir, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := utils.Stat(fullPath)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("file %w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	content, err := utils.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return scanContent(fullPath, strings.ToValidUTF8(string(content), string(utf8.RuneError)), keyword, caseSensitive), nil
}

func scanContent(fullPath, content, keyword string, caseSensitive bool) *dto.SearchResult {
	lines := strings.Split(content, "\n")

	searchKeyword := keyword
	if !caseSensitive {
		searchKeyword = foldCase(keyword)
	}

	lineMatches := []dto.LineMatch{}
	count := 0

	for i, line := range lines {
		compareLine := line
		if !caseSensitive {
			compareLine = foldCase(line)
		}

		positions := matchPositions(compareLine, searchKeyword)
		if len(positions) == 0 {
			continue
		}

		count += len(positions)
		lineMatches = append(lineMatches, dto.LineMatch{
			LineNumber:     i + 1,
			Content:        truncate(line, MaxContentLength),
			MatchPositions: positions,
		})
	}

	return &dto.SearchResult{
		Found:       count > 0,
		Count:       count,
		LineMatches: lineMatches,
		FileName:    filepath.Base(fullPath),
		FilePath:    fullPath,
		TotalLines:  len(lines),
	}
}

// matchPositions returns the character offsets of every occurrence of keyword
// in line. The search resumes one character after each match start, so
// overlapping occurrences are all reported.
func matchPositions(line, keyword string) []int {
	var positions []int

	offset := 0
	charIndex := 0
	for {
		i := strings.Index(line[offset:], keyword)
		if i < 0 {
			break
		}

		charIndex += utf8.RuneCountInString(line[offset : offset+i])
		positions = append(positions, charIndex)

		_, size := utf8.DecodeRuneInString(line[offset+i:])
		offset += i + size
		charIndex++
	}

	return positions
}

// foldCase lower-cases s one rune at a time so the result has the same
// number of characters as s.
func foldCase(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n])
}
