package report

import (
	"io"

	"github.com/nao1215/passcheck/internal/model"
)

// Writer defines the interface for report output.
// Implementations render analysis results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers with
// the same API.
type Writer interface {
	// Write outputs one analysis result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.AnalysisResult) (int, error)

	// WriteSummary outputs a batch summary with its individual results.
	WriteSummary(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than using
// io.MultiWriter because our Writer interface is different from io.Writer -
// we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(result *model.AnalysisResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteSummary outputs the summary to all configured Writers.
func (m *MultiWriter) WriteSummary(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteSummary(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// strengthOrder lists the tiers from weakest to strongest for summary
// rendering.
var strengthOrder = []model.Strength{
	model.StrengthVeryWeak,
	model.StrengthWeak,
	model.StrengthModerate,
	model.StrengthStrong,
	model.StrengthVeryStrong,
}

// bestPractices are the fixed security tips appended to human-readable
// reports. They are advice about password hygiene in general, independent
// of the analyzed password.
var bestPractices = []string{
	"Use a unique password for each account",
	"Consider using a password manager",
	"Enable two-factor authentication when available",
	"Use passphrases with random words",
	"Avoid personal information in passwords",
	"Update passwords regularly for sensitive accounts",
}
