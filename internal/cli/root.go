package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ventmap/internal/buildinfo"
	"github.com/aalvaropc/ventmap/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "ventmap",
		Short:         "ventmap: count grid points where line segments overlap",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			root, found, err := resolveWorkspaceRoot(workspace)
			if err != nil {
				return err
			}
			// Outside a workspace, only write logs when asked to.
			if !found && !debug {
				return nil
			}
			cleanup, _ = logger.Setup(logger.Config{Root: root, Debug: debug})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .ventmap/logs/ventmap.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		solveCmd(&workspace),
		validateCmd(&workspace),
		diagramCmd(&workspace),
		viewCmd(&workspace, &debug),
		inputsCmd(&workspace),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
