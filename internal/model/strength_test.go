package model

import "testing"

// TestStrengthFromScore tests the score-to-tier threshold table.
func TestStrengthFromScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score int
		want  Strength
	}{
		{name: "score 100 is very strong", score: 100, want: StrengthVeryStrong},
		{name: "score 80 is very strong (lower boundary)", score: 80, want: StrengthVeryStrong},
		{name: "score 79 is strong (upper boundary)", score: 79, want: StrengthStrong},
		{name: "score 60 is strong (lower boundary)", score: 60, want: StrengthStrong},
		{name: "score 59 is moderate", score: 59, want: StrengthModerate},
		{name: "score 40 is moderate", score: 40, want: StrengthModerate},
		{name: "score 39 is weak", score: 39, want: StrengthWeak},
		{name: "score 20 is weak (lower boundary)", score: 20, want: StrengthWeak},
		{name: "score 19 is very weak (upper boundary)", score: 19, want: StrengthVeryWeak},
		{name: "score 0 is very weak", score: 0, want: StrengthVeryWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StrengthFromScore(tt.score); got != tt.want {
				t.Errorf("got %s, expected %s", got, tt.want)
			}
		})
	}
}

// TestStrengthString tests the human-readable labels.
func TestStrengthString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strength Strength
		want     string
	}{
		{StrengthVeryWeak, "Very Weak"},
		{StrengthWeak, "Weak"},
		{StrengthModerate, "Moderate"},
		{StrengthStrong, "Strong"},
		{StrengthVeryStrong, "Very Strong"},
		{Strength(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.strength.String(); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestStrengthIndicator tests the color word mapping.
func TestStrengthIndicator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strength Strength
		want     string
	}{
		{StrengthVeryWeak, "red"},
		{StrengthWeak, "orange"},
		{StrengthModerate, "yellow"},
		{StrengthStrong, "blue"},
		{StrengthVeryStrong, "green"},
		{Strength(-1), "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.strength.Indicator(); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestStrengthMarshalJSON tests that tiers serialize as their labels.
func TestStrengthMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := StrengthVeryStrong.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"Very Strong"` {
		t.Errorf("got %s, expected %q", data, `"Very Strong"`)
	}
}
