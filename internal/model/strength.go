package model

// Strength represents the qualitative tier of a password's score.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Strength int

const (
	// StrengthVeryWeak covers scores below 20. Passwords in this tier
	// typically fail most criteria and fall to brute force immediately.
	StrengthVeryWeak Strength = iota

	// StrengthWeak covers scores 20-39. A few criteria are met but the
	// password remains easy to guess or exhaust.
	StrengthWeak

	// StrengthModerate covers scores 40-59. Roughly half the criteria are
	// met; acceptable only for low-value accounts.
	StrengthModerate

	// StrengthStrong covers scores 60-79. Most criteria are met and the
	// brute-force search space is substantial.
	StrengthStrong

	// StrengthVeryStrong covers scores 80 and above. All or nearly all
	// criteria are met.
	StrengthVeryStrong
)

// StrengthFromScore maps a 0-100 score to its strength tier.
// The thresholds are evaluated top-down, first match wins:
// >=80 Very Strong, >=60 Strong, >=40 Moderate, >=20 Weak, else Very Weak.
func StrengthFromScore(score int) Strength {
	switch {
	case score >= 80:
		return StrengthVeryStrong
	case score >= 60:
		return StrengthStrong
	case score >= 40:
		return StrengthModerate
	case score >= 20:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}

// String returns the human-readable label for the strength tier.
func (s Strength) String() string {
	switch s {
	case StrengthVeryStrong:
		return "Very Strong"
	case StrengthStrong:
		return "Strong"
	case StrengthModerate:
		return "Moderate"
	case StrengthWeak:
		return "Weak"
	case StrengthVeryWeak:
		return "Very Weak"
	default:
		return "Unknown"
	}
}

// Indicator returns the color word associated with the strength tier.
// Report writers use this both as plain text and to select terminal colors.
func (s Strength) Indicator() string {
	switch s {
	case StrengthVeryStrong:
		return "green"
	case StrengthStrong:
		return "blue"
	case StrengthModerate:
		return "yellow"
	case StrengthWeak:
		return "orange"
	case StrengthVeryWeak:
		return "red"
	default:
		return "gray"
	}
}

// MarshalJSON serializes the strength as its label string.
// JSON consumers care about the tier name, not the internal ordinal.
func (s Strength) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
