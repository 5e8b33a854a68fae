package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trayline/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "trayline",
	Short: "trayline – segment-based status line for terminal hosts",
	Long:  "trayline composes a width-safe status line from configurable segments and keeps it refreshed inside a host display.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the host TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
