package analyzer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// defaultWordlist holds the bundled known-weak passwords, one per line.
// The list ships inside the binary so the tool stays fully offline.
//
//go:embed common_passwords.txt
var defaultWordlist string

// CommonPasswordList is an immutable set of lower-cased known-weak
// passwords, loaded once at process start and shared read-only by all
// evaluations. It is never mutated after construction, so concurrent
// lookups need no locking.
type CommonPasswordList struct {
	words map[string]struct{}
}

// NewCommonPasswordList creates a list containing the bundled defaults.
func NewCommonPasswordList() *CommonPasswordList {
	l := &CommonPasswordList{words: make(map[string]struct{})}
	l.addLines(strings.NewReader(defaultWordlist))
	return l
}

// NewCommonPasswordListFromFile creates a list containing the bundled
// defaults merged with entries from a user-provided wordlist file
// (one password per line, blank lines and '#' comments skipped).
func NewCommonPasswordListFromFile(path string) (*CommonPasswordList, error) {
	l := NewCommonPasswordList()

	f, err := os.Open(path) //nolint:gosec // User-provided wordlist path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	l.addLines(f)
	return l, nil
}

// addLines inserts folded entries from r. Only called during construction.
func (l *CommonPasswordList) addLines(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		l.words[fold(word)] = struct{}{}
	}
}

// Contains reports whether the case-folded password is in the list.
func (l *CommonPasswordList) Contains(password string) bool {
	_, ok := l.words[fold(password)]
	return ok
}

// Len returns the number of entries in the list.
func (l *CommonPasswordList) Len() int {
	return len(l.words)
}

// fold lowercases a string using Unicode case folding, so lookups behave
// consistently for non-ASCII input as well.
//
// A cases.Caser is stateful and must not be shared between goroutines,
// so a fresh one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
