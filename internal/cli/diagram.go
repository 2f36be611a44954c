package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/infra/diagram"
	"github.com/aalvaropc/ventmap/internal/infra/logger"
	"github.com/aalvaropc/ventmap/internal/usecase"
)

func diagramCmd(workspace *string) *cobra.Command {
	var flags solveFlags
	var noColor bool
	var maxSize int

	c := &cobra.Command{
		Use:   "diagram",
		Short: "Print the coverage grid (. = uncovered, digits = coverage)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			s, err := resolveSolveSettings(cmd.Flags(), ws, flags)
			if err != nil {
				return err
			}

			uc := usecase.NewSolveOverlaps(ws.segments,
				usecase.WithLogger(logger.L()),
				usecase.WithWorkers(s.workers),
			)
			res, err := uc.Execute(cmd.Context(), s.input, s.variant, s.threshold)
			if err != nil {
				return err
			}

			opts := diagram.Options{
				Threshold: s.threshold,
				Color:     ws.cfg.Diagram.Color && !noColor,
				MaxSize:   ws.cfg.Diagram.MaxSize,
			}
			if cmd.Flags().Changed("max-size") {
				opts.MaxSize = maxSize
			}

			out, err := diagram.New(opts).Render(res.Coverage)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, out)
			fmt.Fprintf(w, "\n%d overlaps (>= %d)\n", res.Report.Overlaps, res.Report.Threshold)
			return nil
		},
	}

	addSolveFlags(c, &flags)
	c.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured cells")
	c.Flags().IntVar(&maxSize, "max-size", 200, "Refuse to draw grids wider or taller than this (0 = unbounded)")
	return c
}
