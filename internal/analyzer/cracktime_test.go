package analyzer

import (
	"strings"
	"testing"
)

// TestEstimateCrackTime tests the bucketed brute-force estimates.
// Expected values follow from alphabet^length / (2 * 1e9 guesses/sec).
func TestEstimateCrackTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"empty password", "", "N/A"},
		{"single lowercase", "a", "Instantly"},
		{"four digits", "1470", "Instantly"},
		{"eleven digits", "58205820582", "50 seconds"},
		{"eight lowercase", "jjjjjjjj", "1 minutes"},
		{"thirteen digits", "5820582058205", "1 hours"},
		{"ten lowercase", "jqjqjqjqjq", "19 hours"},
		{"eight lowercase plus digits", "j2j2j2j2", "23 minutes"},
		{"eight mixed-case plus digits", "aB3aB3aB", "1 days"},
		{"thirteen lowercase", "jqjqjqjqjqjqj", "39 years"},
		{"sixteen lowercase", "jqjqjqjqjqjqjqjq", "Centuries"},
		{"full alphabet long password", "correct-horse-battery-staple-2024!", "Centuries"},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := a.EstimateCrackTime(tt.password); got != tt.want {
				t.Errorf("EstimateCrackTime(%q) = %q, expected %q", tt.password, got, tt.want)
			}
		})
	}
}

// TestEstimateCrackTimePathologicalLength tests that extremely long inputs
// short-circuit instead of computing a huge exponentiation.
func TestEstimateCrackTimePathologicalLength(t *testing.T) {
	t.Parallel()

	a := New()
	huge := strings.Repeat("aB3!", 1<<16) // 256 KiB of full-alphabet input
	if got := a.EstimateCrackTime(huge); got != "Centuries" {
		t.Errorf("got %q, expected Centuries", got)
	}
}

// TestEstimateCrackTimeGuessRate tests that a faster attacker shortens the
// estimate.
func TestEstimateCrackTimeGuessRate(t *testing.T) {
	t.Parallel()

	// 26^8 / (2 * 1e12) = 104 ms, below one second.
	fast := New(WithGuessesPerSecond(1_000_000_000_000))
	if got := fast.EstimateCrackTime("jjjjjjjj"); got != "Instantly" {
		t.Errorf("got %q, expected Instantly", got)
	}
}

// TestAlphabetSize tests additive character-class coverage.
func TestAlphabetSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"lowercase only", "abc", 26},
		{"uppercase only", "ABC", 26},
		{"digits only", "123", 10},
		{"special only", "!@#", 32},
		{"lower and digits", "a1", 36},
		{"all four classes", "aA1!", 94},
		{"non-ASCII counts as special", "aä", 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := alphabetSize(tt.password); got != tt.want {
				t.Errorf("alphabetSize(%q) = %d, expected %d", tt.password, got, tt.want)
			}
		})
	}
}

// TestBucketSeconds tests bucket boundaries directly.
func TestBucketSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "Instantly"},
		{1, "1 seconds"},
		{59, "59 seconds"},
		{60, "1 minutes"},
		{3599, "59 minutes"},
		{3600, "1 hours"},
		{86399, "23 hours"},
		{86400, "1 days"},
		{31535999, "364 days"},
		{31536000, "1 years"},
		{31535999999, "999 years"},
		{31536000000, "Centuries"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := bucketSeconds(tt.seconds); got != tt.want {
				t.Errorf("bucketSeconds(%d) = %q, expected %q", tt.seconds, got, tt.want)
			}
		})
	}
}
