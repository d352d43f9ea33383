// Package main provides the entry point for the passcheck CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/input"
	"github.com/nao1215/passcheck/internal/log"
	"github.com/nao1215/passcheck/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCmd creates the root command for passcheck.
// Running the root command with no arguments starts interactive mode.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Offline password strength analyzer",
		Long: `Passcheck analyzes password strength entirely offline.
It evaluates each password against security criteria, computes a 0-100
score, estimates the time a brute-force attacker would need to crack it,
and suggests concrete improvements.

Passwords are never logged, persisted, or transmitted. Interactive entry
is hidden, so passwords do not appear on screen or in shell history.

Run without arguments for interactive mode, or use the check subcommand
to analyze passwords from arguments or a file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Interactive-mode flags
	cmd.Flags().BoolP("demo", "d", false,
		"Analyze the built-in sample passwords instead of prompting")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd executes interactive or demonstration mode.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.Demo, err = cmd.Flags().GetBool("demo")
	if err != nil {
		return err
	}

	slog.SetDefault(log.NewSecureLogger(os.Stderr, cfg.Verbose))

	out := cmd.OutOrStdout()
	a := analyzer.New(
		analyzer.WithGuessesPerSecond(cfg.GuessesPerSecond),
		analyzer.WithMaxPasswordLength(cfg.MaxPasswordLength),
	)
	writer := report.NewSimpleWriter(out, report.WithColor(isTerminal(out)))

	if cfg.Demo {
		return runDemo(out, a, writer)
	}
	return runInteractive(cmd.InOrStdin(), out, a, writer)
}

// runDemo analyzes the fixed sample passwords one by one.
func runDemo(out io.Writer, a *analyzer.Analyzer, writer report.Writer) error {
	samples := input.DemoPasswords()

	fmt.Fprintln(out, "Demonstration mode: analyzing built-in sample passwords.")
	for i, sample := range samples {
		fmt.Fprintf(out, "\nSample %d/%d\n", i+1, len(samples))

		result, err := a.Analyze(sample)
		if err != nil {
			return fmt.Errorf("analysis failed for sample %d: %w", i+1, err)
		}
		if _, err := writer.Write(result); err != nil {
			return err
		}
	}
	return nil
}

// runInteractive prompts for passwords with hidden entry until the user
// quits. Validation failures are reported and the loop continues; the
// password itself never appears in the message.
func runInteractive(in io.Reader, out io.Writer, a *analyzer.Analyzer, writer report.Writer) error {
	fmt.Fprintln(out, "Interactive mode. Entry is hidden; leave empty or type 'quit' to exit.")

	prompter := input.NewPrompter(in, out)
	for {
		entry, err := prompter.ReadPassword("\nEnter password to analyze: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read password: %w", err)
		}

		if input.EndsSession(entry) {
			fmt.Fprintln(out, "Goodbye. Stay safe!")
			return nil
		}

		if err := a.ValidateInput(entry); err != nil {
			fmt.Fprintf(out, "Rejected: %v\n", err)
			continue
		}

		result, err := a.Analyze(entry)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		if _, err := writer.Write(result); err != nil {
			return err
		}
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// isTerminal reports whether the writer is an interactive terminal.
// Color is enabled only for terminals so piped and file output stays plain.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
