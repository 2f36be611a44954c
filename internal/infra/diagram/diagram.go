// Package diagram draws a coverage map as a text grid: "." for uncovered
// points, the coverage count for covered ones and "+" above nine.
package diagram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/usecase/coverage"
)

type Options struct {
	// Threshold highlights cells whose count reaches it when Color is set.
	Threshold int
	Color     bool
	// MaxSize bounds both width and height; 0 means unbounded.
	MaxSize int
}

type Renderer struct {
	opts      Options
	overlap   lipgloss.Style
	covered   lipgloss.Style
	uncovered lipgloss.Style
}

func New(opts Options) *Renderer {
	if opts.Threshold < 1 {
		opts.Threshold = domain.DefaultThreshold
	}
	return &Renderer{
		opts:      opts,
		overlap:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		covered:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		uncovered: lipgloss.NewStyle().Faint(true),
	}
}

// Box returns the area drawn for m: the bounding box of every covered point,
// stretched to include the origin.
func Box(m *coverage.Map) (lo, hi domain.Point) {
	lo, hi, ok := m.Bounds()
	if !ok {
		return domain.Point{}, domain.Point{}
	}
	lo = domain.Pt(min(lo.X, 0), min(lo.Y, 0))
	hi = domain.Pt(max(hi.X, 0), max(hi.Y, 0))
	return lo, hi
}

// Render draws m, one row per y from top to bottom.
func (r *Renderer) Render(m *coverage.Map) (string, error) {
	lo, hi := Box(m)
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	if r.opts.MaxSize > 0 && (w > r.opts.MaxSize || h > r.opts.MaxSize) {
		return "", &domain.OpError{
			Op:   "diagram.render",
			Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("grid %dx%d exceeds max size %d: %w",
				w, h, r.opts.MaxSize, domain.ErrInvalidConfig),
		}
	}

	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			b.WriteString(r.cell(m.Count(domain.Pt(x, y))))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (r *Renderer) cell(n int) string {
	s := Glyph(n)
	if !r.opts.Color {
		return s
	}
	switch {
	case n >= r.opts.Threshold:
		return r.overlap.Render(s)
	case n > 0:
		return r.covered.Render(s)
	default:
		return r.uncovered.Render(s)
	}
}

// Glyph is the plain character for a coverage count.
func Glyph(n int) string {
	switch {
	case n <= 0:
		return "."
	case n > 9:
		return "+"
	default:
		return string(rune('0' + n))
	}
}
