package scanner

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotAFile      = errors.New("path is not a file")
	ErrNotADirectory = errors.New("path is not a directory")
	ErrEmptyKeyword  = errors.New("keyword must not be empty")
)
