package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/infra/diagram"
	"github.com/aalvaropc/ventmap/internal/infra/logger"
	"github.com/aalvaropc/ventmap/internal/ui/tui"
)

func viewCmd(workspace *string, debug *bool) *cobra.Command {
	var flags solveFlags

	c := &cobra.Command{
		Use:   "view",
		Short: "Browse the coverage grid interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			s, err := resolveSolveSettings(cmd.Flags(), ws, flags)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Segments:  ws.segments,
				Input:     s.input,
				Variant:   s.variant,
				Threshold: s.threshold,
				Workers:   s.workers,
				Diagram: diagram.Options{
					Color:   ws.cfg.Diagram.Color,
					MaxSize: ws.cfg.Diagram.MaxSize,
				},
				Logger: logger.L(),
				Debug:  *debug,
			})
		},
	}

	addSolveFlags(c, &flags)
	return c
}
