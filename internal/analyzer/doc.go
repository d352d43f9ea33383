// Package analyzer implements the password strength analysis engine.
//
// The engine evaluates a password against a fixed, ordered set of nine
// heuristic criteria, reduces the outcomes to a 0-100 score and a five-tier
// strength classification, estimates the average-case brute-force crack
// time, and derives human-readable warnings and improvement suggestions.
//
// The entry point is Analyzer, constructed once with the immutable
// common-password list and estimator settings. Analyze is a pure function
// of its input and that static configuration: it performs no I/O, keeps no
// state between calls, and never retains or logs the password. Concurrent
// callers need no coordination.
//
// This is a coarse heuristic advisor, not a cryptographic guarantee. It
// deliberately does not consult breach databases or apply entropy-model
// scoring; the checks mirror widely taught password hygiene rules.
package analyzer
