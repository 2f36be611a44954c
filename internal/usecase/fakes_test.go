package usecase

import (
	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/ports"
)

// --- fakes shared by the use case tests ---

type fakeSegmentLoader struct {
	segments []domain.Segment
	calls    int
}

func (f *fakeSegmentLoader) LoadSegments(_ string) ([]domain.Segment, error) {
	f.calls++
	return f.segments, nil
}

type errSegmentLoader struct {
	err error
}

func (f errSegmentLoader) LoadSegments(_ string) ([]domain.Segment, error) {
	return nil, f.err
}

var (
	_ ports.SegmentLoader = (*fakeSegmentLoader)(nil)
	_ ports.SegmentLoader = errSegmentLoader{}
)

// exampleSegments is the ten-line example from the puzzle statement.
func exampleSegments() []domain.Segment {
	return []domain.Segment{
		domain.MustSegment(0, 9, 5, 9),
		domain.MustSegment(8, 0, 0, 8),
		domain.MustSegment(9, 4, 3, 4),
		domain.MustSegment(2, 2, 2, 1),
		domain.MustSegment(7, 0, 7, 4),
		domain.MustSegment(6, 4, 2, 0),
		domain.MustSegment(0, 9, 2, 9),
		domain.MustSegment(3, 4, 1, 4),
		domain.MustSegment(0, 0, 8, 8),
		domain.MustSegment(5, 5, 8, 2),
	}
}
