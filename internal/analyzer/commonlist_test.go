package analyzer

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNewCommonPasswordList tests the bundled defaults.
func TestNewCommonPasswordList(t *testing.T) {
	t.Parallel()

	l := NewCommonPasswordList()

	t.Run("loads bundled entries", func(t *testing.T) {
		t.Parallel()
		if l.Len() != 27 {
			t.Errorf("got %d entries, expected 27", l.Len())
		}
	})

	t.Run("contains known-weak passwords", func(t *testing.T) {
		t.Parallel()
		for _, word := range []string{"password", "123456", "qwerty", "letmein", "aa123456"} {
			if !l.Contains(word) {
				t.Errorf("expected list to contain %q", word)
			}
		}
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		if !l.Contains("PASSWORD") {
			t.Error("expected case-insensitive match for PASSWORD")
		}
		if !l.Contains("QwErTy") {
			t.Error("expected case-insensitive match for QwErTy")
		}
	})

	t.Run("does not contain the empty string", func(t *testing.T) {
		t.Parallel()
		if l.Contains("") {
			t.Error("expected empty string to be absent")
		}
	})

	t.Run("does not contain uncommon passwords", func(t *testing.T) {
		t.Parallel()
		if l.Contains("correct-horse-battery-staple-2024!") {
			t.Error("expected passphrase to be absent")
		}
	})
}

// TestNewCommonPasswordListFromFile tests merging a user wordlist.
func TestNewCommonPasswordListFromFile(t *testing.T) {
	t.Parallel()

	t.Run("merges file entries with defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "wordlist.txt")
		content := "companyname\n\n# comment line\nS3cretBaseWord\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		l, err := NewCommonPasswordListFromFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !l.Contains("companyname") {
			t.Error("expected merged entry companyname")
		}
		if !l.Contains("s3cretbaseword") {
			t.Error("expected merged entry to be folded to lowercase")
		}
		if !l.Contains("password") {
			t.Error("expected bundled defaults to remain")
		}
		if l.Contains("# comment line") {
			t.Error("expected comment lines to be skipped")
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()
		if _, err := NewCommonPasswordListFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
