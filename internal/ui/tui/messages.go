package tui

import "github.com/aalvaropc/ventmap/internal/domain"

type solvedMsg struct {
	variant domain.Variant
	report  domain.SolveReport
	diagram string
	err     error
}
