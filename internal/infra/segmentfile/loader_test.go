package segmentfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/ventmap/internal/domain"
)

func TestLoadSegments_Example(t *testing.T) {
	segs, err := NewLoader().LoadSegments(filepath.Join("testdata", "example.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 10 {
		t.Fatalf("expected 10 segments, got %d", len(segs))
	}
	if segs[0] != domain.MustSegment(0, 9, 5, 9) {
		t.Fatalf("unexpected first segment %s", segs[0])
	}
}

func TestLoadSegments_CRLF(t *testing.T) {
	segs, err := NewLoader().LoadSegments(filepath.Join("testdata", "crlf.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
}

func TestLoadSegments_InvalidSegmentCarriesPath(t *testing.T) {
	path := filepath.Join("testdata", "invalid_segment.txt")
	_, err := NewLoader().LoadSegments(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidSegment) {
		t.Fatalf("expected KindInvalidSegment, got %v", err)
	}
	if !strings.Contains(err.Error(), path) || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected path and line in error, got %v", err)
	}
}

func TestLoadSegments_NotFound(t *testing.T) {
	_, err := NewLoader().LoadSegments(filepath.Join(t.TempDir(), "missing.txt"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadSegments_Stdin(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader("1,1 -> 3,3\n1,3 -> 3,1\n")))
	segs, err := l.LoadSegments(Stdin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	bad := NewLoader(WithStdin(strings.NewReader("1,1 -> 3,2\n")))
	_, err = bad.LoadSegments(Stdin)
	if err == nil || !strings.Contains(err.Error(), "<stdin>") {
		t.Fatalf("expected <stdin> in error, got %v", err)
	}
}

func TestListInputs(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "puzzles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("day5.txt", "0,9 -> 5,9\n\n1,1 -> 3,3\n")
	write("example.txt", "0,0 -> 1,1\n")
	write("notes.md", "ignored")

	refs, err := NewLoader(WithInputDir("puzzles")).ListInputs(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(refs))
	}
	if refs[0].Name != "day5" || refs[0].Segments != 2 {
		t.Fatalf("unexpected first ref %+v", refs[0])
	}
	if refs[1].Name != "example" {
		t.Fatalf("expected sorted refs, got %+v", refs)
	}
}

func TestListInputs_MissingDir(t *testing.T) {
	_, err := NewLoader().ListInputs(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
