package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/passcheck/internal/analyzer"
)

// Default configuration values.
// The engine defaults come from the analyzer so the two packages cannot
// drift apart; the shell defaults are chosen for a comfortable terminal
// experience.
const (
	// DefaultGuessesPerSecond is the assumed brute-force guess rate used by
	// the crack-time estimator.
	DefaultGuessesPerSecond = analyzer.DefaultGuessesPerSecond

	// DefaultMaxPasswordLength is the defensive bound on accepted input.
	// No real password approaches it; it exists so pathological inputs are
	// rejected before analysis rather than driving unbounded arithmetic.
	DefaultMaxPasswordLength = analyzer.DefaultMaxPasswordLength

	// DefaultBatchSize is the number of concurrent analyses in batch mode.
	// Analysis is CPU-cheap, so a small limit keeps output ordering work
	// low while still overlapping work on multi-core machines.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"
)

// Config holds all configuration options for passcheck.
// This struct is populated from CLI flags and the optional config file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// GuessesPerSecond is the assumed brute-force guess rate for the
	// crack-time estimator.
	GuessesPerSecond int64

	// MaxPasswordLength is the maximum accepted password length in bytes.
	// Longer inputs are rejected before analysis. Zero disables the bound.
	MaxPasswordLength int

	// WordlistPath is an optional file of additional known-weak passwords
	// merged with the bundled common-password list at startup.
	WordlistPath string

	// BatchSize is the number of concurrent analyses in batch mode.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Reports never contain raw passwords, so writing them is safe.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .passcheck in the current directory, the home
	// directory, and the XDG config directory.
	ConfigFilePath string

	// Passwords is the list of passwords to analyze in batch mode.
	// Held in memory only for the duration of the run; never logged
	// or persisted.
	Passwords []string

	// ListFile is an optional file containing passwords to analyze,
	// one per line.
	ListFile string

	// Demo enables demonstration mode with the fixed sample passwords.
	Demo bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		GuessesPerSecond:  DefaultGuessesPerSecond,
		MaxPasswordLength: DefaultMaxPasswordLength,
		BatchSize:         DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for passcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/passcheck
// On macOS: ~/Library/Application Support/passcheck
// On Windows: %APPDATA%\passcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// The first error found is returned because fixing one error often makes
// others irrelevant.
func (c *Config) Validate() error {
	// GuessesPerSecond must be positive; the estimator divides by it
	if c.GuessesPerSecond <= 0 {
		return ErrInvalidGuessRate
	}

	// MaxPasswordLength must be non-negative; zero disables the bound
	if c.MaxPasswordLength < 0 {
		return ErrInvalidMaxLength
	}

	// BatchSize must be positive; zero would mean no analysis at all
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
