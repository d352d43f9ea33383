package analyzer

import (
	"time"
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// Default engine settings.
const (
	// DefaultGuessesPerSecond models an offline attacker with commodity GPU
	// hardware. One billion guesses per second is a deliberately round,
	// conservative-for-the-user figure.
	DefaultGuessesPerSecond = int64(1_000_000_000)

	// DefaultMaxPasswordLength is the defensive upper bound on accepted
	// input. Real passwords are far shorter; the bound exists so
	// pathological inputs cannot drive unbounded work.
	DefaultMaxPasswordLength = 1024
)

// Analyzer is the analysis facade. It composes criteria evaluation,
// scoring, crack-time estimation, and advisory generation into a single
// result per password.
//
// An Analyzer holds only immutable configuration (the common-password list
// and estimator settings), so a single instance is safe for concurrent use
// from multiple goroutines without locking.
type Analyzer struct {
	// common is the read-only known-weak password list.
	common *CommonPasswordList

	// guessesPerSecond is the assumed brute-force guess rate.
	guessesPerSecond int64

	// maxPasswordLength bounds the input accepted by ValidateInput.
	// Zero disables the bound.
	maxPasswordLength int
}

// Option configures an Analyzer.
// This follows the functional options pattern for clean API design.
type Option func(*Analyzer)

// WithCommonPasswords sets the common-password list. Useful when a user
// wordlist has been merged in via NewCommonPasswordListFromFile.
func WithCommonPasswords(list *CommonPasswordList) Option {
	return func(a *Analyzer) {
		if list != nil {
			a.common = list
		}
	}
}

// WithGuessesPerSecond sets the assumed brute-force guess rate.
// Non-positive values are ignored.
func WithGuessesPerSecond(n int64) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.guessesPerSecond = n
		}
	}
}

// WithMaxPasswordLength sets the defensive input length bound used by
// ValidateInput. Negative values are ignored; zero disables the bound.
func WithMaxPasswordLength(n int) Option {
	return func(a *Analyzer) {
		if n >= 0 {
			a.maxPasswordLength = n
		}
	}
}

// New creates an Analyzer with the bundled common-password list and
// default estimator settings, then applies the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		common:            NewCommonPasswordList(),
		guessesPerSecond:  DefaultGuessesPerSecond,
		maxPasswordLength: DefaultMaxPasswordLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ValidateInput checks the password against the defensive length bound.
// Callers collecting input should reject oversized passwords before
// analysis. Returns ErrPasswordTooLong when the bound is exceeded.
func (a *Analyzer) ValidateInput(password string) error {
	if a.maxPasswordLength > 0 && len(password) > a.maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// Analyze runs the complete analysis for one password and assembles the
// result. The stages run in a fixed order (criteria, score, crack time,
// advisory) for determinism, even though the last two do not depend on the
// score.
//
// Analyze cannot fail for any string input, including the empty string:
// every stage handles it explicitly. The error return exists because
// CalculateScore reports ErrEmptyCriteria, an internal-defect signal that
// cannot arise through this path.
func (a *Analyzer) Analyze(password string) (*model.AnalysisResult, error) {
	criteria := a.EvaluateCriteria(password)

	score, err := a.CalculateScore(criteria)
	if err != nil {
		return nil, err
	}

	strength := model.StrengthFromScore(score)
	crackTime := a.EstimateCrackTime(password)
	warnings, suggestions := a.GenerateAdvisory(password, criteria)

	return &model.AnalysisResult{
		Password:    password,
		Length:      utf8.RuneCountInString(password),
		Score:       score,
		Strength:    strength,
		Indicator:   strength.Indicator(),
		CrackTime:   crackTime,
		Criteria:    criteria,
		Warnings:    warnings,
		Suggestions: suggestions,
		AnalyzedAt:  time.Now(),
	}, nil
}
