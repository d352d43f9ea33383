package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidGuessRate is returned when the guess rate is not positive.
	// The crack-time estimator divides by the rate, so zero or negative
	// values are meaningless.
	ErrInvalidGuessRate = errors.New("invalid guess rate: must be positive")

	// ErrInvalidMaxLength is returned when the maximum password length is
	// negative. Use 0 to disable the length bound.
	ErrInvalidMaxLength = errors.New("invalid max password length: must be non-negative")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent analyses at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
