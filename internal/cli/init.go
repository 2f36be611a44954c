package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/infra/fsworkspace"
	"github.com/aalvaropc/ventmap/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create ventmap.yaml and an example input",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\nTry: ventmap solve\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
