// Package log provides secure logging functionality built on top of the
// standard slog package.
//
// Every value this tool handles is a password or derived from one, so the
// logging layer enforces the rule the rest of the code relies on: analyzed
// passwords never reach log output, even in verbose mode. The SecureHandler
// wraps any slog.Handler and masks attributes whose key indicates secret
// material before the record is written.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Info("analysis complete",
//	    "password", input, // masked to ***REDACTED***
//	    "score", result.Score,
//	)
package log
