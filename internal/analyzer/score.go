package analyzer

import "github.com/nao1215/passcheck/internal/model"

// CalculateScore reduces the criteria outcomes to an integer score in
// [0,100]: floor(100 * met / total), clamped to 100. The clamp is
// defensive; with the fixed nine criteria the ratio never exceeds 1.
//
// An empty or nil set returns ErrEmptyCriteria instead of dividing by
// zero. The facade can never produce one, so hitting this error means a
// caller bypassed the evaluator.
func (a *Analyzer) CalculateScore(criteria *model.CriteriaSet) (int, error) {
	if criteria == nil || criteria.Len() == 0 {
		return 0, ErrEmptyCriteria
	}

	score := criteria.MetCount() * 100 / criteria.Len()
	if score > 100 {
		score = 100
	}
	return score, nil
}
