package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trayline/internal/engine"
	"trayline/internal/tray"
	"trayline/internal/trayconf"
)

var (
	segmentsMode  string
	segmentsStyle string
)

func init() {
	segmentsCmd.Flags().StringVar(&segmentsMode, "mode", "", "resolve for this mode (default: config active_mode)")
	segmentsCmd.Flags().StringVar(&segmentsStyle, "style", "long", "resolve for this style (long|short)")
	rootCmd.AddCommand(segmentsCmd)
}

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "List registered segments and the resolved order for a mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := trayconf.Load()
		if err != nil {
			return err
		}
		eng, err := engine.New(f, nil, nil)
		if err != nil {
			return err
		}
		mode := segmentsMode
		if mode == "" {
			mode = f.ActiveMode
		}
		style := tray.StyleLong
		if segmentsStyle == string(tray.StyleShort) {
			style = tray.StyleShort
		}

		selected := eng.Resolver.Selected(mode, style)
		active := make(map[string]int, len(selected))
		for i, name := range selected {
			active[name] = i + 1
		}
		fmt.Printf("mode %s, style %s:\n", mode, style)
		for _, name := range eng.Registry.Names() {
			if rank, ok := active[name]; ok {
				fmt.Printf("  %2d  %s\n", rank, name)
			} else {
				fmt.Printf("   -  %s\n", name)
			}
		}
		return nil
	},
}
