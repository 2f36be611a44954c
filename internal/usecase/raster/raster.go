// Package raster enumerates the grid points covered by a segment.
package raster

import (
	"iter"

	"github.com/aalvaropc/ventmap/internal/domain"
)

// Cursor walks a segment one point at a time, from From to To inclusive.
// It is single-pass; build a new one to walk the segment again.
type Cursor struct {
	next      domain.Point
	step      domain.Point
	remaining int
}

func NewCursor(seg domain.Segment) *Cursor {
	return &Cursor{
		next:      seg.From(),
		step:      seg.Step(),
		remaining: seg.Len(),
	}
}

// Next returns the following point, or false once To has been returned.
func (c *Cursor) Next() (domain.Point, bool) {
	if c.remaining == 0 {
		return domain.Point{}, false
	}
	p := c.next
	c.remaining--
	if c.remaining > 0 {
		c.next = c.next.Add(c.step)
	}
	return p, true
}

// Remaining is the number of points Next has yet to return.
func (c *Cursor) Remaining() int {
	return c.remaining
}

// Positions returns the points of seg in order. Each range over the result
// starts a fresh cursor; breaking out early skips the rest.
func Positions(seg domain.Segment) iter.Seq[domain.Point] {
	return func(yield func(domain.Point) bool) {
		c := NewCursor(seg)
		for p, ok := c.Next(); ok; p, ok = c.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect materializes every point of seg.
func Collect(seg domain.Segment) []domain.Point {
	out := make([]domain.Point, 0, seg.Len())
	for p := range Positions(seg) {
		out = append(out, p)
	}
	return out
}
