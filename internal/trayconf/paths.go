package trayconf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the trayline config directory under the user config base.
// On Linux this typically resolves to $XDG_CONFIG_HOME/trayline; on macOS
// to ~/Library/Application Support/trayline; and on Windows to
// %AppData%/trayline. Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "trayline"), nil
}

// FilePath returns the path of the tray.json config file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tray.json"), nil
}
