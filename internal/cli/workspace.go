package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/infra/segmentfile"
	"github.com/aalvaropc/ventmap/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	segments *segmentfile.Loader
}

// loadWorkspace resolves the workspace and its config. Outside a workspace
// the current directory and the default config are used.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		segments: segmentfile.NewLoader(segmentfile.WithInputDir(cfg.Paths.InputDir)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err = workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return wd, false, nil
	}
	return root, true, nil
}

// resolveInputPath maps the --input argument to a loader path:
// "-" is stdin, an existing file is used as is, a path-like value is taken
// relative to the workspace root and a bare name is looked up in the input dir.
func resolveInputPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Input
	}
	if in == "" {
		return "", fmt.Errorf("input is required (use --input or -f)")
	}
	if in == segmentfile.Stdin {
		return in, nil
	}

	if fileExists(in) {
		return filepath.Clean(in), nil
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	inputDir := filepath.Join(ws.root, ws.cfg.Paths.InputDir)
	for _, name := range []string{in, in + ".txt"} {
		p := filepath.Join(inputDir, name)
		if fileExists(p) {
			return p, nil
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_input",
		Kind: domain.KindNotFound,
		Path: inputDir,
		Err:  fmt.Errorf("input %q not found: %w", in, domain.ErrNotFound),
	}
}

// solveSettings holds the per-run knobs; config values unless a flag was set.
type solveSettings struct {
	input     string
	variant   domain.Variant
	threshold int
	workers   int
}

type solveFlags struct {
	input     string
	part      string
	threshold int
	workers   int
}

func addSolveFlags(c *cobra.Command, f *solveFlags) {
	c.Flags().StringVarP(&f.input, "input", "f", "", "Input file, name under the input dir, or - for stdin (defaults to config)")
	c.Flags().StringVarP(&f.part, "part", "p", "", "1|axis (no diagonals) or 2|all (defaults to config)")
	c.Flags().IntVar(&f.threshold, "threshold", domain.DefaultThreshold, "Coverage a point needs to count as an overlap")
	c.Flags().IntVar(&f.workers, "workers", 1, "Parallel rasterization workers")
}

func resolveSolveSettings(fs *pflag.FlagSet, ws *workspaceCtx, f solveFlags) (solveSettings, error) {
	s := solveSettings{
		variant:   ws.cfg.Defaults.Variant,
		threshold: ws.cfg.Defaults.Threshold,
		workers:   ws.cfg.Solve.Workers,
	}

	input, err := resolveInputPath(ws, f.input)
	if err != nil {
		return s, err
	}
	s.input = input

	if fs.Changed("part") {
		v, err := domain.ParseVariant(f.part)
		if err != nil {
			return s, err
		}
		s.variant = v
	}
	if fs.Changed("threshold") {
		s.threshold = f.threshold
	}
	if fs.Changed("workers") {
		if f.workers < 1 {
			return s, fmt.Errorf("--workers must be >= 1, got %d", f.workers)
		}
		s.workers = f.workers
	}
	return s, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
