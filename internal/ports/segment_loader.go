package ports

import "github.com/aalvaropc/ventmap/internal/domain"

// SegmentLoader loads validated segments from a source (e.g., a file or stdin).
type SegmentLoader interface {
	LoadSegments(path string) ([]domain.Segment, error)
}
