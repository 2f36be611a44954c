package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/usecase/coverage"
)

// Solve counts the points covered by at least two segments. When
// includeDiagonals is false, diagonal segments are ignored.
func Solve(segments []domain.Segment, includeDiagonals bool) int {
	return SolveAtLeast(segments, includeDiagonals, domain.DefaultThreshold)
}

// SolveAtLeast is Solve with a configurable coverage threshold.
func SolveAtLeast(segments []domain.Segment, includeDiagonals bool, threshold int) int {
	return Accumulate(Filter(segments, includeDiagonals)).CountAtLeast(threshold)
}

// Filter returns the segments taking part in a run. Axis-aligned and
// single-point segments are always kept. The input slice is not modified.
func Filter(segments []domain.Segment, includeDiagonals bool) []domain.Segment {
	if includeDiagonals {
		return segments
	}
	out := make([]domain.Segment, 0, len(segments))
	for _, s := range segments {
		if s.IsDiagonal() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Accumulate folds every point of every segment into a fresh coverage map.
func Accumulate(segments []domain.Segment) *coverage.Map {
	m := coverage.New()
	for _, s := range segments {
		m.RecordSegment(s)
	}
	return m
}

// AccumulateParallel splits segments into at most workers chunks, rasterizes
// each chunk into a private map and merges the partial maps once every worker
// is done. The shared map is only written by the calling goroutine.
func AccumulateParallel(ctx context.Context, segments []domain.Segment, workers int) (*coverage.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers = min(max(workers, 1), max(len(segments), 1))
	if workers == 1 {
		return Accumulate(segments), nil
	}

	chunk := (len(segments) + workers - 1) / workers
	partials := make([]*coverage.Map, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(segments))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			m := coverage.New()
			for _, s := range segments[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				m.RecordSegment(s)
			}
			partials[w] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := coverage.New()
	for _, m := range partials {
		out.Merge(m)
	}
	return out, nil
}
