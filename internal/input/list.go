package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadList reads passwords from a file, one per line.
// Blank lines are skipped; everything else is taken verbatim, because any
// byte sequence can be a password.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	passwords, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read password list %s: %w", path, err)
	}
	return passwords, nil
}

// FromReader reads passwords from r, one per line, skipping blank lines.
// Leading and trailing whitespace is preserved except the line terminator;
// a password may legitimately start or end with a space.
func FromReader(r io.Reader) ([]string, error) {
	var passwords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return passwords, nil
}
