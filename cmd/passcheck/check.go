package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/batch"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/input"
	"github.com/nao1215/passcheck/internal/log"
	"github.com/nao1215/passcheck/internal/report"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]...",
		Short: "Analyze the strength of one or more passwords",
		Long: `Check analyzes password strength entirely offline.

Each password is evaluated against security criteria (length, character
variety, common-password lookup, repetition, keyboard patterns), scored
from 0 to 100, and given a brute-force crack-time estimate together with
warnings and improvement suggestions.

Note: passwords passed as arguments may end up in your shell history.
Prefer --list or the interactive mode for real passwords.

Examples:
  # Analyze a single password
  passcheck check 'MyP@ssw0rd'

  # Analyze several passwords concurrently
  passcheck check 'first' 'second' 'third'

  # Analyze passwords from a file, one per line
  passcheck check --list passwords.txt

  # Output a JSON report
  passcheck check --json 'MyP@ssw0rd'

  # Write a Markdown report to a file
  passcheck check --markdown -o report.md --list passwords.txt

  # Assume a slower attacker (one million guesses per second)
  passcheck check --rate 1000000 'MyP@ssw0rd'

Configuration file (.passcheck) example:
  guesses_per_second: 1000000000
  max_password_length: 1024
  wordlist: /path/to/extra-weak-passwords.txt
  batch_size: 4`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"File containing passwords to analyze, one per line")
	cmd.Flags().StringP("wordlist", "w", "",
		"File of additional known-weak passwords merged with the built-in list")

	// Estimator flags
	cmd.Flags().Int64P("rate", "r", config.DefaultGuessesPerSecond,
		"Assumed brute-force guesses per second for crack-time estimation")
	cmd.Flags().Int("max-length", config.DefaultMaxPasswordLength,
		"Maximum accepted password length in bytes (0 disables the bound)")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	// Build config from the config file and flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with password masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cmd, cfg, logger)
}

// buildConfig creates a Config from the config file and cobra command flags.
// File settings are applied first; flags the user actually set win over the
// file, while untouched flags keep the file's values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load settings from the config file if one exists.
	// If the user explicitly specified a path, error when it is missing.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags the user set override the file
	if cmd.Flags().Changed("rate") {
		cfg.GuessesPerSecond, err = cmd.Flags().GetInt64("rate")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-length") {
		cfg.MaxPasswordLength, err = cmd.Flags().GetInt("max-length")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("batch") {
		cfg.BatchSize, err = cmd.Flags().GetInt("batch")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("wordlist") {
		cfg.WordlistPath, err = cmd.Flags().GetString("wordlist")
		if err != nil {
			return nil, err
		}
	}

	cfg.ListFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Positional arguments are passwords to analyze
	cfg.Passwords = args

	return cfg, nil
}

// runCheck executes the analysis.
func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	passwords, err := collectPasswords(cfg)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return errors.New("no passwords provided (pass them as arguments or use --list)")
	}

	a, err := newAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	// Reject oversized inputs before any analysis. The index is reported,
	// never the password itself.
	for i, password := range passwords {
		if err := a.ValidateInput(password); err != nil {
			return fmt.Errorf("password %d of %d: %w", i+1, len(passwords), err)
		}
	}

	writer, cleanup, err := newReportWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting analysis",
		"count", len(passwords),
		"batchSize", cfg.BatchSize,
		"guessesPerSecond", cfg.GuessesPerSecond,
	)

	// A single password gets a single report; multiple passwords are
	// analyzed concurrently and rendered as a summary.
	if len(passwords) == 1 {
		result, err := a.Analyze(passwords[0])
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		_, err = writer.Write(result)
		return err
	}

	processor := batch.NewProcessor(a,
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithLogger(logger),
	)
	summary, err := processor.Process(ctx, passwords)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	_, err = writer.WriteSummary(summary)
	return err
}

// collectPasswords gathers passwords from positional arguments and the
// optional list file. Arguments come first, preserving order.
func collectPasswords(cfg *config.Config) ([]string, error) {
	passwords := cfg.Passwords

	if cfg.ListFile != "" {
		fromFile, err := input.ReadList(cfg.ListFile)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, fromFile...)
	}

	return passwords, nil
}

// newAnalyzer builds the analysis engine from the configuration, merging a
// user wordlist into the common-password list when one is configured.
func newAnalyzer(cfg *config.Config, logger *slog.Logger) (*analyzer.Analyzer, error) {
	opts := []analyzer.Option{
		analyzer.WithGuessesPerSecond(cfg.GuessesPerSecond),
		analyzer.WithMaxPasswordLength(cfg.MaxPasswordLength),
	}

	if cfg.WordlistPath != "" {
		list, err := analyzer.NewCommonPasswordListFromFile(cfg.WordlistPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load wordlist %s: %w", cfg.WordlistPath, err)
		}
		logger.Info("wordlist merged", "path", cfg.WordlistPath, "entries", list.Len())
		opts = append(opts, analyzer.WithCommonPasswords(list))
	}

	return analyzer.New(opts...), nil
}

// newReportWriter selects the report format and destination.
// The returned cleanup closes the output file when one was opened; for
// stdout it is a no-op.
func newReportWriter(cfg *config.Config, stdout io.Writer) (report.Writer, func(), error) {
	output := stdout
	cleanup := func() {}

	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports never contain raw passwords, but they still describe
		// credential weaknesses, so restrict them to the owner (0600).
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		output = f
		cleanup = func() { _ = f.Close() } //nolint:errcheck // Best effort cleanup
	}

	// JSON output (wrapped with tool metadata)
	if cfg.JSONReport {
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint()), cleanup, nil
	}

	// Markdown output
	if cfg.MarkdownReport {
		return report.NewMarkdownWriter(output), cleanup, nil
	}

	// Human-readable report (default); color only on a terminal
	colored := cfg.ReportFile == "" && isTerminal(output)
	return report.NewSimpleWriter(output, report.WithColor(colored)), cleanup, nil
}
