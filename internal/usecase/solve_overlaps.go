package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/ports"
	"github.com/aalvaropc/ventmap/internal/usecase/coverage"
)

type SolveOverlaps struct {
	segments ports.SegmentLoader
	log      *slog.Logger
	workers  int
	now      func() time.Time
}

type SolveOption func(*SolveOverlaps)

func WithLogger(l *slog.Logger) SolveOption {
	return func(uc *SolveOverlaps) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithWorkers enables the parallel accumulation when n > 1.
func WithWorkers(n int) SolveOption {
	return func(uc *SolveOverlaps) { uc.workers = n }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolveOverlaps) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewSolveOverlaps(sl ports.SegmentLoader, opts ...SolveOption) *SolveOverlaps {
	uc := &SolveOverlaps{
		segments: sl,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		workers:  1,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// SolveResult carries the report and the coverage map it was computed from.
type SolveResult struct {
	Report   domain.SolveReport
	Coverage *coverage.Map
}

// Execute loads the segments at input, keeps the ones selected by variant and
// counts the points whose coverage reaches threshold.
func (uc *SolveOverlaps) Execute(ctx context.Context, input string, variant domain.Variant, threshold int) (SolveResult, error) {
	if threshold < 1 {
		return SolveResult{}, &domain.OpError{
			Op:   "usecase.solve",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("threshold must be >= 1, got %d: %w", threshold, domain.ErrInvalidConfig),
		}
	}

	report := domain.SolveReport{
		Input:     input,
		Variant:   variant,
		Part:      variant.Part(),
		Threshold: threshold,
		StartedAt: uc.now(),
	}

	segments, err := uc.segments.LoadSegments(input)
	if err != nil {
		return SolveResult{Report: report}, err
	}
	uc.log.Debug("segments.loaded", "input", input, "count", len(segments))

	used := Filter(segments, variant.IncludeDiagonals())
	report.SegmentsTotal = len(segments)
	report.SegmentsUsed = len(used)

	uc.log.Info("solve.started",
		"input", input,
		"variant", string(variant),
		"segments", len(used),
		"workers", uc.workers,
	)

	m, err := AccumulateParallel(ctx, used, uc.workers)
	if err != nil {
		report.EndedAt = uc.now()
		return SolveResult{Report: report}, err
	}

	report.PointsCovered = m.Len()
	report.Overlaps = m.CountAtLeast(threshold)
	report.EndedAt = uc.now()

	uc.log.Info("solve.finished",
		"input", input,
		"variant", string(variant),
		"overlaps", report.Overlaps,
		"duration_ms", report.Duration().Milliseconds(),
	)

	return SolveResult{Report: report, Coverage: m}, nil
}
