package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trayline/internal/trayconf"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for tray.json",
	Long:  "Writes the configuration file's JSON Schema to stdout, for editor validation of tray.json.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := trayconf.MarshalSchema(trayconf.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
