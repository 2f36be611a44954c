// Package coverage counts how many segments cover each grid point.
package coverage

import (
	"iter"
	"slices"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/usecase/raster"
)

// Map is a sparse Point -> visit count table. A point without an entry has
// count zero. Map is not safe for concurrent writers.
type Map struct {
	counts map[domain.Point]int
}

func New() *Map {
	return &Map{counts: make(map[domain.Point]int)}
}

// Record increments the count of p by one.
func (m *Map) Record(p domain.Point) {
	m.counts[p]++
}

// RecordAll records every point yielded by seq.
func (m *Map) RecordAll(seq iter.Seq[domain.Point]) {
	for p := range seq {
		m.counts[p]++
	}
}

// RecordSegment rasterizes seg into the map.
func (m *Map) RecordSegment(seg domain.Segment) {
	m.RecordAll(raster.Positions(seg))
}

func (m *Map) Count(p domain.Point) int {
	return m.counts[p]
}

// Len is the number of distinct points with a non-zero count.
func (m *Map) Len() int {
	return len(m.counts)
}

// CountAtLeast returns how many distinct points have a count >= threshold.
// A threshold of 1 or less counts every recorded point.
func (m *Map) CountAtLeast(threshold int) int {
	if threshold <= 1 {
		return len(m.counts)
	}
	n := 0
	for _, c := range m.counts {
		if c >= threshold {
			n++
		}
	}
	return n
}

// PointsAtLeast lists the points with a count >= threshold, ordered by Y then X.
func (m *Map) PointsAtLeast(threshold int) []domain.Point {
	var out []domain.Point
	for p, c := range m.counts {
		if c >= threshold {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Merge adds the counts of other into m. other is left unchanged.
func (m *Map) Merge(other *Map) {
	if other == nil {
		return
	}
	for p, c := range other.counts {
		m.counts[p] += c
	}
}

// Bounds returns the smallest box holding every recorded point.
// ok is false for an empty map.
func (m *Map) Bounds() (lo, hi domain.Point, ok bool) {
	for p := range m.counts {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo = domain.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = domain.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return lo, hi, ok
}
