package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	for _, w := range []string{"# ventmap", ".ventmap/"} {
		if !strings.Contains(string(b), w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, b)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	if err := os.WriteFile(path, []byte("bin/"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}
	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("second ensureGitignore error: %v", err)
	}

	b, _ := os.ReadFile(path)
	s := string(b)
	if !strings.HasPrefix(s, "bin/\n") {
		t.Fatalf("expected existing entries kept, got:\n%s", s)
	}
	if strings.Count(s, ".ventmap/") != 1 {
		t.Fatalf("expected a single .ventmap/ entry, got:\n%s", s)
	}
}
