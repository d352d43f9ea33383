package analyzer

import (
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// Warning and suggestion texts. Each trigger maps to at most one of each,
// so duplicates cannot occur within a single analysis.
const (
	warnTooShort   = "Password is too short"
	warnCommon     = "This is a commonly used password"
	warnRepeats    = "Contains repeated characters"
	warnSequences  = "Contains keyboard patterns"
	suggestLength  = "Use at least 8 characters"
	suggestLower   = "Add lowercase letters"
	suggestUpper   = "Add uppercase letters"
	suggestNumbers = "Add numbers"
	suggestSpecial = "Add special characters"
	suggestUnique  = "Choose a unique password"
	suggestRepeats = "Avoid character repetition"
	suggestPattern = "Avoid sequential patterns"
)

// GenerateAdvisory derives warnings and improvement suggestions from the
// password and its criteria outcomes. Every trigger is evaluated
// unconditionally, and the fixed order below is also the display order.
func (a *Analyzer) GenerateAdvisory(password string, criteria *model.CriteriaSet) (warnings, suggestions []string) {
	warnings = make([]string, 0, 4)
	suggestions = make([]string, 0, 8)

	if utf8.RuneCountInString(password) < 8 {
		warnings = append(warnings, warnTooShort)
		suggestions = append(suggestions, suggestLength)
	}

	if !criteria.Met(model.CriterionLowercase) {
		suggestions = append(suggestions, suggestLower)
	}
	if !criteria.Met(model.CriterionUppercase) {
		suggestions = append(suggestions, suggestUpper)
	}
	if !criteria.Met(model.CriterionNumbers) {
		suggestions = append(suggestions, suggestNumbers)
	}
	if !criteria.Met(model.CriterionSpecialChars) {
		suggestions = append(suggestions, suggestSpecial)
	}

	if a.common.Contains(password) {
		warnings = append(warnings, warnCommon)
		suggestions = append(suggestions, suggestUnique)
	}

	if hasRepeatedRun(password) {
		warnings = append(warnings, warnRepeats)
		suggestions = append(suggestions, suggestRepeats)
	}

	if hasSequence(password) {
		warnings = append(warnings, warnSequences)
		suggestions = append(suggestions, suggestPattern)
	}

	return warnings, suggestions
}
