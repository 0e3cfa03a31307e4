// Package cli defines the board command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the board root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "board",
		Short:         "Board listing service with windowed pagination",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	cmd.AddCommand(
		NewServeCmd(&configPath),
		NewMigrateCmd(&configPath),
		NewWindowCmd(),
	)
	return cmd
}
