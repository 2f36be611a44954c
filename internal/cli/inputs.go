package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func inputsCmd(workspace *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "inputs",
		Short: "Manage segment inputs in a workspace",
	}

	c.AddCommand(inputsListCmd(workspace))
	return c
}

func inputsListCmd(workspace *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List input files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace)
			if err != nil {
				return err
			}

			refs, err := ws.segments.ListInputs(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no inputs found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s, %d lines)\n", r.Name, rel, r.Segments)
			}
			return nil
		},
	}
}
