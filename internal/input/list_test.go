package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFromReader tests line-based password ingestion.
func TestFromReader(t *testing.T) {
	t.Parallel()

	t.Run("reads one password per line", func(t *testing.T) {
		t.Parallel()
		got, err := FromReader(strings.NewReader("first\nsecond\nthird\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"first", "second", "third"}
		if len(got) != len(want) {
			t.Fatalf("got %d passwords, expected %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: got %q, expected %q", i, got[i], want[i])
			}
		}
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()
		got, err := FromReader(strings.NewReader("one\n\n   \ntwo\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d passwords, expected 2", len(got))
		}
	})

	t.Run("strips carriage returns", func(t *testing.T) {
		t.Parallel()
		got, err := FromReader(strings.NewReader("win\r\nstyle\r\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != "win" || got[1] != "style" {
			t.Errorf("got %v, expected [win style]", got)
		}
	})

	t.Run("keeps leading symbols", func(t *testing.T) {
		t.Parallel()
		// A password may legitimately start with # or whitespace.
		got, err := FromReader(strings.NewReader("#hashstart\n  spaced\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0] != "#hashstart" {
			t.Errorf("got %q, expected %q", got[0], "#hashstart")
		}
		if got[1] != "  spaced" {
			t.Errorf("got %q, expected %q", got[1], "  spaced")
		}
	})

	t.Run("empty input yields no passwords", func(t *testing.T) {
		t.Parallel()
		got, err := FromReader(strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d passwords, expected 0", len(got))
		}
	})
}

// TestReadList tests file-based password ingestion.
func TestReadList(t *testing.T) {
	t.Parallel()

	t.Run("reads an existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "passwords.txt")
		if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		got, err := ReadList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
			t.Errorf("got %v, expected [alpha beta]", got)
		}
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

// TestDemoPasswords tests the demonstration sample set.
func TestDemoPasswords(t *testing.T) {
	t.Parallel()

	t.Run("has six samples", func(t *testing.T) {
		t.Parallel()
		if got := DemoPasswords(); len(got) != 6 {
			t.Errorf("got %d samples, expected 6", len(got))
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		first := DemoPasswords()
		first[0] = "mutated"
		if second := DemoPasswords(); second[0] == "mutated" {
			t.Error("expected DemoPasswords to return an independent copy")
		}
	})
}
