package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/infra/diagram"
	"github.com/aalvaropc/ventmap/internal/usecase"
)

func cmdSolve(deps Deps, variant domain.Variant) tea.Cmd {
	return func() tea.Msg {
		uc := usecase.NewSolveOverlaps(deps.Segments,
			usecase.WithLogger(deps.Logger),
			usecase.WithWorkers(deps.Workers),
		)

		res, err := uc.Execute(context.Background(), deps.Input, variant, deps.Threshold)
		if err != nil {
			return solvedMsg{variant: variant, report: res.Report, err: err}
		}

		opts := deps.Diagram
		opts.Threshold = deps.Threshold
		out, err := diagram.New(opts).Render(res.Coverage)
		return solvedMsg{variant: variant, report: res.Report, diagram: out, err: err}
	}
}
