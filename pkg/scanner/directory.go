package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/KyleBrandon/keyword-search/pkg/dto"
	"github.com/KyleBrandon/keyword-search/pkg/utils"
)

// AllowedExtensions are the file suffixes eligible for a directory scan
var AllowedExtensions = []string{".txt", ".log", ".md"}

// ScanDirectory scans the direct entries of the directory at path and returns
// the results of the files that contain keyword. The search is always case
// insensitive. A non-empty extensionFilter further restricts the allowed files.
func (s *Scanner) ScanDirectory(path, keyword, extensionFilter string) ([]dto.SearchResult, error) {
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
			return nil, fmt.Errorf("directory %w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	entries, err := utils.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	results := []dto.SearchResult{}
	for _, entry := range entries {
		name := entry.Name()
		if !eligible(name, extensionFilter) {
			continue
		}

		result, err := s.scanEntry(filepath.Join(fullPath, name), keyword)
		if err != nil {
			slog.Debug("skipping directory entry", "entry", name, "error", err)
			continue
		}

		if result != nil && result.Found {
			results = append(results, *result)
		}
	}

	return results, nil
}

// scanEntry stats and scans one directory entry. Directories come back as a
// nil result; every access failure comes back as an error for the caller to skip.
func (s *Scanner) scanEntry(entryPath, keyword string) (*dto.SearchResult, error) {
	info, err := utils.Stat(entryPath)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, nil
	}

	return s.ScanFile(entryPath, keyword, false)
}

func eligible(name, extensionFilter string) bool {
	allowed := false
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(name, ext) {
			allowed = true
			break
		}
	}

	if !allowed {
		return false
	}

	return extensionFilter == "" || strings.HasSuffix(name, extensionFilter)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
