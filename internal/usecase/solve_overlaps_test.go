package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/ventmap/internal/domain"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2021, 12, 5, 6, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Millisecond)
	}
}

func TestSolveOverlaps_Variants(t *testing.T) {
	cases := []struct {
		variant domain.Variant
		used    int
		want    int
	}{
		{domain.VariantAxisAligned, 6, 5},
		{domain.VariantAll, 10, 12},
	}

	for _, c := range cases {
		loader := &fakeSegmentLoader{segments: exampleSegments()}
		uc := NewSolveOverlaps(loader, WithClock(fixedClock()))

		res, err := uc.Execute(context.Background(), "example.txt", c.variant, domain.DefaultThreshold)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.variant, err)
		}
		r := res.Report
		if r.Overlaps != c.want {
			t.Errorf("%s: overlaps = %d, want %d", c.variant, r.Overlaps, c.want)
		}
		if r.SegmentsTotal != 10 || r.SegmentsUsed != c.used {
			t.Errorf("%s: segments total/used = %d/%d", c.variant, r.SegmentsTotal, r.SegmentsUsed)
		}
		if r.Part != c.variant.Part() {
			t.Errorf("%s: part = %d", c.variant, r.Part)
		}
		if r.PointsCovered != res.Coverage.Len() {
			t.Errorf("%s: points covered %d, map len %d", c.variant, r.PointsCovered, res.Coverage.Len())
		}
		if r.Duration() <= 0 {
			t.Errorf("%s: expected positive duration", c.variant)
		}
		if loader.calls != 1 {
			t.Errorf("%s: expected one load, got %d", c.variant, loader.calls)
		}
	}
}

func TestSolveOverlaps_ParallelWorkers(t *testing.T) {
	uc := NewSolveOverlaps(&fakeSegmentLoader{segments: exampleSegments()}, WithWorkers(3), WithLogger(nil))
	res, err := uc.Execute(context.Background(), "example.txt", domain.VariantAll, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Report.Overlaps != 12 {
		t.Fatalf("expected 12, got %d", res.Report.Overlaps)
	}
}

func TestSolveOverlaps_InvalidThreshold(t *testing.T) {
	loader := &fakeSegmentLoader{}
	uc := NewSolveOverlaps(loader)
	_, err := uc.Execute(context.Background(), "example.txt", domain.VariantAll, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if loader.calls != 0 {
		t.Fatalf("loader must not be called on invalid threshold")
	}
}

func TestSolveOverlaps_LoadError(t *testing.T) {
	loadErr := errors.New("bad input")
	uc := NewSolveOverlaps(errSegmentLoader{err: loadErr})
	res, err := uc.Execute(context.Background(), "x.txt", domain.VariantAll, 2)
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loadErr, got %v", err)
	}
	if res.Coverage != nil {
		t.Fatalf("expected no coverage map on error")
	}
}

func TestSolveOverlaps_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewSolveOverlaps(&fakeSegmentLoader{segments: exampleSegments()}, WithWorkers(2))
	res, err := uc.Execute(ctx, "example.txt", domain.VariantAll, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Report.EndedAt.IsZero() {
		t.Fatalf("expected EndedAt set")
	}
}
