package cmd

import (
	"fmt"
	"io"
	"os"
)

// openInput opens path for reading, or stdin when path is empty.
// The returned close function is safe to call for stdin.
func openInput(path string) (io.Reader, string, func() error, error) {
	if path == "" {
		return os.Stdin, "stdin", func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, path, f.Close, nil
}

// createOutput creates path for writing, or returns stdout when path is empty.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// parseDelimiter converts a one-character flag value to a rune.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r[0], nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
