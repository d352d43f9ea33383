package analyzer

import (
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"
)

// Character-class alphabet sizes for the brute-force model. The special
// class uses 32 as a conventional stand-in for printable ASCII symbols.
const (
	alphabetLowercase = 26
	alphabetUppercase = 26
	alphabetDigits    = 10
	alphabetSpecial   = 32
)

// Bucket thresholds in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
	// centuriesThreshold is 1000 years; anything above renders as "Centuries".
	centuriesThreshold = 31536000000
)

// EstimateCrackTime estimates the average-case time for an exhaustive
// brute-force search to find the password, as a bucketed human-readable
// string. This is a coarse capacity heuristic, not a cryptographic bound.
//
// The model: the alphabet size is the sum of the character classes present
// in the password (lowercase 26, uppercase 26, digits 10, special 32), the
// search space is alphabet^length, and the attacker makes GuessesPerSecond
// guesses. Average-case means dividing the space by two, modeling the true
// password sitting midway through the enumeration.
//
// The empty password returns "N/A". Long passwords short-circuit to
// "Centuries" before any large exponentiation: once the search-space bit
// length already exceeds the top bucket there is nothing left to compute.
func (a *Analyzer) EstimateCrackTime(password string) string {
	if password == "" {
		return "N/A"
	}

	size := alphabetSize(password)
	if size == 0 {
		// Unreachable for non-empty strings (every character falls in some
		// class), kept as a classifier-gap guard.
		return "Instantly"
	}

	length := utf8.RuneCountInString(password)

	// Bits needed for the full search space versus bits that already land in
	// the "Centuries" bucket. The +1 margin keeps float imprecision away from
	// the boundary; anything near it goes through the exact big.Int path.
	bits := float64(length) * math.Log2(float64(size))
	limit := math.Log2(2*float64(a.guessesPerSecond)) + math.Log2(centuriesThreshold)
	if bits > limit+1 {
		return "Centuries"
	}

	space := new(big.Int).Exp(big.NewInt(int64(size)), big.NewInt(int64(length)), nil)
	divisor := new(big.Int).Mul(big.NewInt(2), big.NewInt(a.guessesPerSecond))
	seconds := new(big.Int).Div(space, divisor)

	if !seconds.IsInt64() {
		return "Centuries"
	}
	return bucketSeconds(seconds.Int64())
}

// alphabetSize returns the additive alphabet size for the character classes
// present in the password. Classes are non-exclusive: a password containing
// all four yields 94.
func alphabetSize(password string) int {
	size := 0
	if hasLowercase(password) {
		size += alphabetLowercase
	}
	if hasUppercase(password) {
		size += alphabetUppercase
	}
	if hasDigit(password) {
		size += alphabetDigits
	}
	if hasSpecial(password) {
		size += alphabetSpecial
	}
	return size
}

// bucketSeconds renders a duration in seconds as the coarse human-readable
// buckets used in reports. Quotients are truncated, matching the display
// convention of the tool.
func bucketSeconds(seconds int64) string {
	switch {
	case seconds < 1:
		return "Instantly"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%d minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%d hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%d days", seconds/secondsPerDay)
	case seconds < centuriesThreshold:
		return fmt.Sprintf("%d years", seconds/secondsPerYear)
	default:
		return "Centuries"
	}
}
