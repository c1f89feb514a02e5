// Package utils contains file system abstraction methods for easier testing
package utils

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ResolvePath turns inputPath into a clean absolute path. Relative paths are
// resolved against baseDir, or the working directory when baseDir is empty.
func ResolvePath(baseDir, inputPath string) (string, error) {
	if filepath.IsAbs(inputPath) {
		return filepath.Clean(inputPath), nil
	}

	if baseDir == "" {
		fullPath, err := filepath.Abs(inputPath)
		if err != nil {
			return "", err
		}
		slog.Debug("input path is relative to the working directory", "inputPath", inputPath, "fullPath", fullPath)
		return fullPath, nil
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(base, inputPath)
	slog.Debug("input path is relative to the base directory", "inputPath", inputPath, "fullPath", fullPath)

	return fullPath, nil
}

func Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir returns the direct entries of path sorted by file name
func ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
