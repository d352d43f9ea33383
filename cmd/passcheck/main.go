// Package main provides the entry point for the passcheck CLI.
//
// Passcheck is an offline password strength analyzer. It evaluates passwords
// against security criteria, scores them, estimates brute-force crack time,
// and suggests improvements. Analysis is entirely local: passwords are never
// logged, persisted, or sent anywhere.
//
// Usage:
//
//	passcheck                 (interactive mode with hidden entry)
//	passcheck --demo          (analyze the built-in sample passwords)
//	passcheck check <password>...
//	passcheck check --list <file>
//
// See --help for all available options.
package main

// main is the entry point for passcheck.
func main() {
	Execute()
}
