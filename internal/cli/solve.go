package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/domain"
	"github.com/aalvaropc/ventmap/internal/infra/logger"
	"github.com/aalvaropc/ventmap/internal/usecase"
)

func solveCmd(workspace *string) *cobra.Command {
	var flags solveFlags
	var format string

	c := &cobra.Command{
		Use:   "solve",
		Short: "Count the grid points covered by at least two segments",
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

			return printReport(cmd.OutOrStdout(), res.Report, format)
		},
	}

	addSolveFlags(c, &flags)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|plain")
	return c
}

func printReport(w io.Writer, r domain.SolveReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := struct {
			domain.SolveReport
			DurationMS float64 `json:"duration_ms"`
		}{r, float64(r.Duration().Microseconds()) / 1000}
		return enc.Encode(payload)
	case "plain":
		_, err := fmt.Fprintln(w, r.Overlaps)
		return err
	case "pretty", "":
		printPrettyReport(w, r)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", format)
	}
}

func printPrettyReport(w io.Writer, r domain.SolveReport) {
	diag := "without diagonals"
	if r.Variant.IncludeDiagonals() {
		diag = "with diagonals"
	}

	fmt.Fprintf(w, "Input:      %s\n", r.Input)
	fmt.Fprintf(w, "Part:       %d (%s)\n", r.Part, diag)
	fmt.Fprintf(w, "Segments:   %d used / %d total\n", r.SegmentsUsed, r.SegmentsTotal)
	fmt.Fprintf(w, "Points:     %d covered\n", r.PointsCovered)
	fmt.Fprintf(w, "Threshold:  %d\n", r.Threshold)
	fmt.Fprintf(w, "Solved in %s: %d\n", r.Duration(), r.Overlaps)
}
