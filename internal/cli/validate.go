package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/usecase"
)

func validateCmd(workspace *string) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate an input without counting overlaps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			path, err := resolveInputPath(ws, input)
			if err != nil {
				return err
			}

			total, diagonals, err := usecase.NewValidateInput(ws.segments).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d segments (%d axis-aligned, %d diagonal)\n",
				total, total-diagonals, diagonals)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "f", "", "Input file, name under the input dir, or - for stdin (defaults to config)")
	return c
}
