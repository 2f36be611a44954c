package segmentfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/ports"
)

// Stdin is the path that makes the loader read standard input.
const Stdin = "-"

type Loader struct {
	inputDir string
	stdin    io.Reader
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{inputDir: "input", stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithInputDir(dir string) Option {
	return func(l *Loader) { l.inputDir = dir }
}

// WithStdin replaces os.Stdin; useful for tests.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

var (
	_ ports.SegmentLoader = (*Loader)(nil)
	_ ports.InputCatalog  = (*Loader)(nil)
)

func (l *Loader) LoadSegments(path string) ([]domain.Segment, error) {
	if path == Stdin {
		segs, err := Parse(l.stdin)
		return segs, withPath(err, "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "segmentfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	segs, err := Parse(f)
	return segs, withPath(err, path)
}

// ListInputs lists the *.txt files of the input dir under root.
func (l *Loader) ListInputs(root string) ([]domain.InputRef, error) {
	dir := filepath.Join(root, l.inputDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "segmentfile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.InputRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := countLines(p)
		refs = append(refs, domain.InputRef{
			Name:     strings.TrimSuffix(name, filepath.Ext(name)),
			Path:     p,
			Segments: n,
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

func withPath(err error, path string) error {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Path == "" {
		oe.Path = path
	}
	return err
}
