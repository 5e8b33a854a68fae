package cli

import (
	"github.com/spf13/cobra"

	"trayline/internal/settings"
)

var toggleSave bool

func init() {
	toggleCmd.Flags().BoolVar(&toggleSave, "save", false, "write the result into tray.json as long-style defaults")
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [query]",
	Short: "Interactively force segments in or out",
	Long:  "Opens a multi-select over the toggle universe. An optional query fuzzy-filters the segment names.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return settings.Run(query, toggleSave)
	},
}
