package analyzer

import (
	"errors"
	"testing"

	"github.com/nao1215/passcheck/internal/model"
)

// TestCalculateScore tests the met/total ratio reduction.
func TestCalculateScore(t *testing.T) {
	t.Parallel()

	a := New()

	// buildSet creates a nine-criterion set with the given number met.
	buildSet := func(met int) *model.CriteriaSet {
		cs := New().EvaluateCriteria("")
		count := 0
		for _, c := range cs.All() {
			c.Met = count < met
			cs.Add(c)
			count++
		}
		return cs
	}

	tests := []struct {
		name string
		met  int
		want int
	}{
		{"zero met scores zero", 0, 0},
		{"one of nine", 1, 11},
		{"four of nine", 4, 44},
		{"eight of nine", 8, 88},
		{"all nine met scores one hundred", 9, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := a.CalculateScore(buildSet(tt.met))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, expected %d", got, tt.want)
			}
		})
	}

	t.Run("score stays within bounds for real passwords", func(t *testing.T) {
		t.Parallel()
		for _, password := range []string{"", "a", "password", "Tr0ub4dor&3", "correct-horse-battery-staple-2024!"} {
			score, err := a.CalculateScore(a.EvaluateCriteria(password))
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", password, err)
			}
			if score < 0 || score > 100 {
				t.Errorf("score %d out of range for %q", score, password)
			}
		}
	})
}

// TestCalculateScoreEmptySet tests the InvalidState error path.
func TestCalculateScoreEmptySet(t *testing.T) {
	t.Parallel()

	a := New()

	t.Run("nil set", func(t *testing.T) {
		t.Parallel()
		if _, err := a.CalculateScore(nil); !errors.Is(err, ErrEmptyCriteria) {
			t.Errorf("got %v, expected ErrEmptyCriteria", err)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()
		if _, err := a.CalculateScore(model.NewCriteriaSet()); !errors.Is(err, ErrEmptyCriteria) {
			t.Errorf("got %v, expected ErrEmptyCriteria", err)
		}
	})
}
