package usecase

import (
	"context"

	"github.com/aalvaropc/ventmap/internal/ports"
)

type ValidateInput struct {
	segments ports.SegmentLoader
}

func NewValidateInput(sl ports.SegmentLoader) *ValidateInput {
	return &ValidateInput{segments: sl}
}

// Execute parses and validates every segment at input without rasterizing.
// It returns the number of segments and how many of them are diagonal.
func (uc *ValidateInput) Execute(ctx context.Context, input string) (total int, diagonals int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	segments, err := uc.segments.LoadSegments(input)
	if err != nil {
		return 0, 0, err
	}

	for _, s := range segments {
		if s.IsDiagonal() {
			diagonals++
		}
	}
	return len(segments), diagonals, nil
}
