package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// sequencePatterns are the keyboard and counting patterns detected by the
// no_sequences criterion. Matching is case-insensitive.
//
// Scope: these cover ASCII Latin-keyboard rows and Western digits only.
// Passwords in other alphabets get no sequence detection.
var sequencePatterns = []string{"123", "abc", "qwe", "asd", "zxc"}

// EvaluateCriteria runs the nine fixed security checks against the password
// and returns their outcomes in display order. All checks are evaluated
// independently and unconditionally; none depends on another's result.
// The empty string is legal input: every check simply reports its outcome.
func (a *Analyzer) EvaluateCriteria(password string) *model.CriteriaSet {
	cs := model.NewCriteriaSet()

	// Length criteria count characters, not bytes, so multi-byte input is
	// measured the same way the crack-time estimator measures it.
	length := utf8.RuneCountInString(password)

	cs.Add(model.Criterion{
		ID:          model.CriterionLength8,
		Label:       "Minimum 8 characters",
		Description: "Longer passwords are harder to crack",
		Met:         length >= 8,
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionLength12,
		Label:       "12+ characters (recommended)",
		Description: "Significantly increases security",
		Met:         length >= 12,
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionLowercase,
		Label:       "Lowercase letters",
		Description: "Include a-z characters",
		Met:         hasLowercase(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionUppercase,
		Label:       "Uppercase letters",
		Description: "Include A-Z characters",
		Met:         hasUppercase(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionNumbers,
		Label:       "Numbers",
		Description: "Include 0-9 digits",
		Met:         hasDigit(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionSpecialChars,
		Label:       "Special characters",
		Description: "Include symbols like !@#$%",
		Met:         hasSpecial(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionNotCommon,
		Label:       "Not a common password",
		Description: "Avoid easily guessable passwords",
		Met:         !a.common.Contains(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionNoRepeats,
		Label:       "No repeated characters",
		Description: "Avoid patterns like 'aaa' or '111'",
		Met:         !hasRepeatedRun(password),
	})
	cs.Add(model.Criterion{
		ID:          model.CriterionNoSequences,
		Label:       "No sequential patterns",
		Description: "Avoid keyboard patterns",
		Met:         !hasSequence(password),
	})

	return cs
}

// hasLowercase reports whether the password contains a code point in a-z.
func hasLowercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			return true
		}
	}
	return false
}

// hasUppercase reports whether the password contains a code point in A-Z.
func hasUppercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// hasDigit reports whether the password contains a code point in 0-9.
func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// hasSpecial reports whether the password contains any character outside
// a-z, A-Z, and 0-9. Non-ASCII characters count as special.
func hasSpecial(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether the password contains the same character
// repeated three or more times consecutively.
func hasRepeatedRun(s string) bool {
	runes := []rune(s)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequence reports whether the password contains any known sequential
// pattern, case-insensitively.
func hasSequence(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range sequencePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
