package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/infra/segmentfile"
)

// --- looksLikePath ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"example", false},
		{"example.txt", false},
		{"./example.txt", true},
		{"input/example.txt", true},
		{"/abs/path/example.txt", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- fileExists ---

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "missing.txt")) {
		t.Error("expected fileExists=false for missing file")
	}
	if fileExists(tmp) {
		t.Error("expected fileExists=false for a directory")
	}
}

// --- resolveInputPath ---

func newTestWorkspace(t *testing.T) *workspaceCtx {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "input"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "input", "small.txt"), []byte("0,0 -> 2,0\n0,0 -> 0,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := domain.DefaultConfig()
	cfg.Defaults.Input = "input/small.txt"
	return &workspaceCtx{
		root:     root,
		found:    true,
		cfg:      cfg,
		segments: segmentfile.NewLoader(segmentfile.WithInputDir(cfg.Paths.InputDir)),
	}
}

func TestResolveInputPath(t *testing.T) {
	ws := newTestWorkspace(t)
	want := filepath.Join(ws.root, "input", "small.txt")

	cases := []struct {
		arg  string
		want string
	}{
		{"", want},
		{"small", want},
		{"small.txt", want},
		{"input/small.txt", want},
		{want, want},
		{"-", segmentfile.Stdin},
	}
	for _, c := range cases {
		got, err := resolveInputPath(ws, c.arg)
		if err != nil {
			t.Fatalf("resolveInputPath(%q): %v", c.arg, err)
		}
		if got != c.want {
			t.Errorf("resolveInputPath(%q) = %q, want %q", c.arg, got, c.want)
		}
	}
}

func TestResolveInputPath_UnknownName(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := resolveInputPath(ws, "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

// --- resolveSolveSettings ---

func TestResolveSolveSettings_ConfigDefaults(t *testing.T) {
	ws := newTestWorkspace(t)
	var f solveFlags
	c := &cobra.Command{Use: "x"}
	addSolveFlags(c, &f)

	s, err := resolveSolveSettings(c.Flags(), ws, f)
	if err != nil {
		t.Fatal(err)
	}
	if s.variant != domain.VariantAll || s.threshold != 2 || s.workers != 1 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestResolveSolveSettings_FlagsOverride(t *testing.T) {
	ws := newTestWorkspace(t)
	ws.cfg.Defaults.Threshold = 5

	var f solveFlags
	c := &cobra.Command{Use: "x"}
	addSolveFlags(c, &f)
	for k, v := range map[string]string{"part": "1", "threshold": "3", "workers": "4"} {
		if err := c.Flags().Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	s, err := resolveSolveSettings(c.Flags(), ws, f)
	if err != nil {
		t.Fatal(err)
	}
	if s.variant != domain.VariantAxisAligned || s.threshold != 3 || s.workers != 4 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestResolveSolveSettings_BadPart(t *testing.T) {
	ws := newTestWorkspace(t)
	var f solveFlags
	c := &cobra.Command{Use: "x"}
	addSolveFlags(c, &f)
	_ = c.Flags().Set("part", "3")

	_, err := resolveSolveSettings(c.Flags(), ws, f)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestResolveSolveSettings_BadWorkers(t *testing.T) {
	ws := newTestWorkspace(t)
	var f solveFlags
	c := &cobra.Command{Use: "x"}
	addSolveFlags(c, &f)
	_ = c.Flags().Set("workers", "0")

	if _, err := resolveSolveSettings(c.Flags(), ws, f); err == nil {
		t.Fatal("expected error for --workers 0")
	}
}

// --- printReport ---

func sampleReport() domain.SolveReport {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.SolveReport{
		Input:         "input/example.txt",
		Variant:       domain.VariantAll,
		Part:          2,
		Threshold:     2,
		SegmentsTotal: 10,
		SegmentsUsed:  10,
		PointsCovered: 39,
		Overlaps:      12,
		StartedAt:     start,
		EndedAt:       start.Add(1500 * time.Microsecond),
	}
}

func TestPrintReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "json"); err != nil {
		t.Fatal(err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out["overlaps"] != float64(12) {
		t.Errorf("overlaps = %v, want 12", out["overlaps"])
	}
	if out["variant"] != "all" {
		t.Errorf("variant = %v, want all", out["variant"])
	}
	if out["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", out["duration_ms"])
	}
}

func TestPrintReport_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "pretty"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Input:      input/example.txt", "with diagonals", "10 used / 10 total", ": 12\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintReport_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, sampleReport(), "plain"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "12\n" {
		t.Fatalf("plain = %q", buf.String())
	}
}

func TestPrintReport_UnknownFormat(t *testing.T) {
	if err := printReport(&bytes.Buffer{}, sampleReport(), "xml"); err == nil {
		t.Fatal("expected error")
	}
}

// --- root command ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	want := []string{"solve", "validate", "diagram", "view", "inputs", "init", "version"}
	for _, name := range want {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEndToEnd_InitThenSolve(t *testing.T) {
	root := t.TempDir()

	if _, err := runRoot(t, "init", "--path", root); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := runRoot(t, "-w", root, "solve", "--format", "plain")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if strings.TrimSpace(out) != "12" {
		t.Fatalf("part 2 = %q, want 12", out)
	}

	out, err = runRoot(t, "-w", root, "solve", "--format", "plain", "-p", "1", "--workers", "3")
	if err != nil {
		t.Fatalf("solve part 1: %v", err)
	}
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("part 1 = %q, want 5", out)
	}

	out, err = runRoot(t, "-w", root, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "OK: 10 segments") {
		t.Fatalf("validate output: %q", out)
	}

	out, err = runRoot(t, "-w", root, "diagram", "-p", "1", "--no-color")
	if err != nil {
		t.Fatalf("diagram: %v", err)
	}
	if !strings.HasPrefix(out, ".......1..\n") || !strings.Contains(out, "5 overlaps (>= 2)") {
		t.Fatalf("diagram output:\n%s", out)
	}

	out, err = runRoot(t, "-w", root, "inputs", "list")
	if err != nil {
		t.Fatalf("inputs list: %v", err)
	}
	if !strings.Contains(out, "- example.txt") {
		t.Fatalf("inputs output: %q", out)
	}
}

func TestEndToEnd_InvalidSegmentReportsLine(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "bad.txt")
	if err := os.WriteFile(p, []byte("0,9 -> 5,9\n0,0 -> 3,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runRoot(t, "-w", root, "solve", "-f", p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidSegment) {
		t.Fatalf("expected invalid_segment, got %v", err)
	}
	msg := userMessage(err)
	if !strings.Contains(msg, "line 2") || !strings.Contains(msg, "0,0 -> 3,1") {
		t.Fatalf("message lacks line detail: %q", msg)
	}
}
