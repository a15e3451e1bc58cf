package main

import (
	"io"
	"os"
)

// FileUnavailable is returned when a file can't be read or written.
type FileUnavailable struct {
	Path string
	Err  error
}

func (e *FileUnavailable) Error() string {
	return "file unavailable: " + e.Err.Error()
}

func (e *FileUnavailable) Unwrap() error {
	return e.Err
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileUnavailable{path, err}
	}
	return b, nil
}

// writeOut writes b to path, or to stdout followed by a newline when path is empty.
func writeOut(path string, b []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(append(b, '\n'))
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &FileUnavailable{path, err}
	}
	return nil
}
