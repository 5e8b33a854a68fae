package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"trayline/internal/system"
	"trayline/internal/trayconf"
	"trayline/internal/ui"
)

// Start runs the status line host and returns any error.
func Start() error {
	f, err := trayconf.Load()
	if err != nil {
		system.Logger.Warn("config load failed, using defaults", "err", err)
		f = trayconf.Default()
	}
	// Initialize global bubblezone manager for mouse-aware chips.
	zone.NewGlobal()
	if _, err := tea.NewProgram(ui.InitialModel(f), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
