package model

import (
	"encoding/json"
	"testing"
)

// TestCriteriaSetAdd tests insertion order and replacement semantics.
func TestCriteriaSetAdd(t *testing.T) {
	t.Parallel()

	cs := NewCriteriaSet()
	cs.Add(Criterion{ID: CriterionLength8, Label: "Minimum 8 characters", Met: true})
	cs.Add(Criterion{ID: CriterionLowercase, Label: "Lowercase letters", Met: false})
	cs.Add(Criterion{ID: CriterionNumbers, Label: "Numbers", Met: true})

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()
		want := []string{CriterionLength8, CriterionLowercase, CriterionNumbers}
		got := cs.IDs()
		if len(got) != len(want) {
			t.Fatalf("got %d ids, expected %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: got %q, expected %q", i, got[i], want[i])
			}
		}
	})

	t.Run("replaces duplicate in place", func(t *testing.T) {
		t.Parallel()
		dup := NewCriteriaSet()
		dup.Add(Criterion{ID: CriterionLength8, Met: false})
		dup.Add(Criterion{ID: CriterionLowercase, Met: true})
		dup.Add(Criterion{ID: CriterionLength8, Met: true})

		if dup.Len() != 2 {
			t.Errorf("got %d criteria, expected 2", dup.Len())
		}
		if dup.IDs()[0] != CriterionLength8 {
			t.Errorf("expected %q to keep first position", CriterionLength8)
		}
		if !dup.Met(CriterionLength8) {
			t.Error("expected replacement to update Met outcome")
		}
	})
}

// TestCriteriaSetGet tests lookup by identifier.
func TestCriteriaSetGet(t *testing.T) {
	t.Parallel()

	cs := NewCriteriaSet()
	cs.Add(Criterion{ID: CriterionNotCommon, Label: "Not a common password", Met: true})

	t.Run("returns existing criterion", func(t *testing.T) {
		t.Parallel()
		c, ok := cs.Get(CriterionNotCommon)
		if !ok {
			t.Fatal("expected criterion to exist")
		}
		if c.Label != "Not a common password" {
			t.Errorf("got label %q", c.Label)
		}
	})

	t.Run("reports missing criterion", func(t *testing.T) {
		t.Parallel()
		if _, ok := cs.Get("nonexistent"); ok {
			t.Error("expected lookup to fail for unknown id")
		}
	})

	t.Run("Met is false for missing criterion", func(t *testing.T) {
		t.Parallel()
		if cs.Met("nonexistent") {
			t.Error("expected false for unknown id")
		}
	})
}

// TestCriteriaSetMetCount tests pass counting.
func TestCriteriaSetMetCount(t *testing.T) {
	t.Parallel()

	cs := NewCriteriaSet()
	cs.Add(Criterion{ID: CriterionLength8, Met: true})
	cs.Add(Criterion{ID: CriterionLength12, Met: false})
	cs.Add(Criterion{ID: CriterionUppercase, Met: true})

	if got := cs.MetCount(); got != 2 {
		t.Errorf("got %d, expected 2", got)
	}
}

// TestCriteriaSetMarshalJSON tests that criteria serialize as an ordered array.
func TestCriteriaSetMarshalJSON(t *testing.T) {
	t.Parallel()

	cs := NewCriteriaSet()
	cs.Add(Criterion{ID: CriterionLength8, Label: "Minimum 8 characters", Met: true})
	cs.Add(Criterion{ID: CriterionNumbers, Label: "Numbers", Met: false})

	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []Criterion
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d criteria, expected 2", len(decoded))
	}
	if decoded[0].ID != CriterionLength8 || decoded[1].ID != CriterionNumbers {
		t.Errorf("order not preserved: got %q then %q", decoded[0].ID, decoded[1].ID)
	}
}
