// Package input acquires ciphertext for the CLI from args, files, or stdin.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// From resolves the ciphertext for a command: an explicit file wins, then
// positional args joined with spaces, then everything readable from stdin.
// Empty ciphertext is valid; input that is not UTF-8 text is rejected at
// this boundary.
func From(args []string, filePath string, stdin io.Reader) (string, error) {
	if filePath != "" {
		return FromFile(filePath)
	}
	if len(args) > 0 {
		return validate(strings.Join(args, " "))
	}
	return FromReader(stdin)
}

// FromFile reads ciphertext from a file, dropping a single trailing newline.
func FromFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open ciphertext file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return FromReader(file)
}

// FromReader reads ciphertext from a stream, dropping a single trailing newline.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("failed to read ciphertext: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	return validate(text)
}

func validate(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("ciphertext is not valid UTF-8 text")
	}
	return text, nil
}
