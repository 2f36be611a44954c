package tui

import (
	"log/slog"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/infra/diagram"
	"github.com/aalvaropc/ventmap/internal/ports"
)

type Deps struct {
	Segments ports.SegmentLoader

	Input     string
	Variant   domain.Variant
	Threshold int
	Workers   int
	Diagram   diagram.Options

	Logger *slog.Logger
	Debug  bool
}
