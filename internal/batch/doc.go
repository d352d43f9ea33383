// Package batch provides concurrent analysis of multiple passwords.
//
// The analysis engine is a pure function of its input, so batch processing
// needs no locking beyond writing each result into its own slot. Results
// are returned in input order regardless of completion order.
package batch
