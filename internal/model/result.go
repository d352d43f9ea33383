package model

import (
	"strings"
	"time"
)

// AnalysisResult is the complete output of analyzing one password.
// It is created once per Analyze call and owned by the caller afterwards;
// the engine retains nothing.
//
// Design decision: Password carries `json:"-"` so the raw secret can never
// end up in a JSON report written to disk. Serialized output exposes only
// the length and a masked form.
type AnalysisResult struct {
	// Password is the original input. In-memory only, never serialized.
	Password string `json:"-"`

	// Length is the password length in characters (runes), matching the
	// unit the length criteria and the crack-time estimator use.
	Length int `json:"length"`

	// Score is the normalized strength score in [0,100].
	Score int `json:"score"`

	// Strength is the qualitative tier derived from Score.
	Strength Strength `json:"strength"`

	// Indicator is the color word associated with the strength tier.
	Indicator string `json:"indicator"`

	// CrackTime is the bucketed human-readable brute-force estimate,
	// e.g. "3 hours" or "Centuries". "N/A" for an empty password.
	CrackTime string `json:"crack_time"`

	// Criteria holds the per-check outcomes in display order.
	Criteria *CriteriaSet `json:"criteria"`

	// Warnings lists detected problems, in fixed display order.
	Warnings []string `json:"warnings"`

	// Suggestions lists concrete improvements, in fixed display order.
	Suggestions []string `json:"suggestions"`

	// AnalyzedAt is the time the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// MaskedPassword returns a display-safe form of the password: the first
// character followed by asterisks. Empty passwords render as "(empty)".
// Report writers use this instead of the raw password.
func (r *AnalysisResult) MaskedPassword() string {
	if r.Length == 0 {
		return "(empty)"
	}
	runes := []rune(r.Password)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// Summary aggregates the outcomes of a batch of analyses.
// It mirrors the per-tier counting that single results cannot express.
type Summary struct {
	// VeryWeakCount through VeryStrongCount are per-tier result counts.
	VeryWeakCount   int `json:"very_weak"`
	WeakCount       int `json:"weak"`
	ModerateCount   int `json:"moderate"`
	StrongCount     int `json:"strong"`
	VeryStrongCount int `json:"very_strong"`

	// Results holds the individual analyses in input order.
	Results []*AnalysisResult `json:"results"`
}

// NewSummary builds a Summary from a slice of results, preserving order.
// Nil entries (skipped inputs) are ignored.
func NewSummary(results []*AnalysisResult) *Summary {
	s := &Summary{Results: make([]*AnalysisResult, 0, len(results))}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Results = append(s.Results, r)
		switch r.Strength {
		case StrengthVeryWeak:
			s.VeryWeakCount++
		case StrengthWeak:
			s.WeakCount++
		case StrengthModerate:
			s.ModerateCount++
		case StrengthStrong:
			s.StrongCount++
		case StrengthVeryStrong:
			s.VeryStrongCount++
		}
	}
	return s
}

// Total returns the number of analyzed passwords in the summary.
func (s *Summary) Total() int {
	return len(s.Results)
}

// CountForStrength returns the number of results in the given tier.
func (s *Summary) CountForStrength(strength Strength) int {
	switch strength {
	case StrengthVeryWeak:
		return s.VeryWeakCount
	case StrengthWeak:
		return s.WeakCount
	case StrengthModerate:
		return s.ModerateCount
	case StrengthStrong:
		return s.StrongCount
	case StrengthVeryStrong:
		return s.VeryStrongCount
	default:
		return 0
	}
}

// HasWeakPasswords reports whether any result fell below Moderate.
func (s *Summary) HasWeakPasswords() bool {
	return s.VeryWeakCount > 0 || s.WeakCount > 0
}
