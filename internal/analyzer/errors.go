package analyzer

import "errors"

// Engine errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each return site. This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyCriteria is returned by CalculateScore when the criteria set
	// is nil or empty. This signals a programming defect, not a user-input
	// problem: the evaluator always produces the fixed nine criteria, so an
	// empty set can only come from a caller bypassing it.
	ErrEmptyCriteria = errors.New("empty criteria set: cannot compute a score")

	// ErrPasswordTooLong is returned by ValidateInput when the password
	// exceeds the configured maximum length. The bound is defensive; it
	// keeps pathological inputs from driving unbounded work.
	ErrPasswordTooLong = errors.New("password exceeds maximum accepted length")
)
