package domain

import "fmt"

// Segment is a straight line between two grid points. It is either
// axis-aligned or an exact 45 degree diagonal; NewSegment is the only way to
// build a non-zero Segment, so every Segment value satisfies that invariant.
type Segment struct {
	from Point
	to   Point
}

// NewSegment validates the endpoints and returns the segment.
func NewSegment(from, to Point) (Segment, error) {
	s := Segment{from: from, to: to}
	if !s.IsAxisAligned() && !s.IsDiagonal() {
		return Segment{}, &OpError{
			Op:   "domain.new_segment",
			Kind: KindInvalidSegment,
			Err:  fmt.Errorf("%s: %w", s, ErrInvalidSegment),
		}
	}
	return s, nil
}

// MustSegment is like NewSegment but panics on invalid input. Meant for
// tests and literals.
func MustSegment(x1, y1, x2, y2 int) Segment {
	s, err := NewSegment(Pt(x1, y1), Pt(x2, y2))
	if err != nil {
		panic(err)
	}
	return s
}

func (s Segment) From() Point { return s.from }
func (s Segment) To() Point   { return s.to }

// IsAxisAligned reports whether the segment is horizontal or vertical.
// A single-point segment is axis-aligned.
func (s Segment) IsAxisAligned() bool {
	return s.from.X == s.to.X || s.from.Y == s.to.Y
}

// IsDiagonal reports whether the segment runs at 45, 135, 225 or 315 degrees.
func (s Segment) IsDiagonal() bool {
	d := s.to.Sub(s.from).Abs()
	return !s.IsAxisAligned() && d.X == d.Y
}

// Step is the unit vector walked from From to To. Zero for a single point.
func (s Segment) Step() Point {
	return s.to.Sub(s.from).Unit()
}

// Len is the number of grid points the segment covers, both endpoints included.
func (s Segment) Len() int {
	d := s.to.Sub(s.from).Abs()
	return max(d.X, d.Y) + 1
}

func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.from, s.to)
}
