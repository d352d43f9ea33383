// Package input collects passwords for analysis from interactive prompts,
// list files, and the fixed demonstration set.
//
// Collected passwords live in memory only for the duration of the run.
// Nothing in this package logs or persists them; interactive entry is read
// with terminal echo disabled so passwords do not appear on screen or in
// scrollback.
package input
