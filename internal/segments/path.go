package segments

import (
	"os"
	"path/filepath"
	"strings"

	"trayline/internal/tray"
)

// Path shows the working directory, home-abbreviated and squeezed to the
// last few components so it stays status-line sized.
func Path() *tray.Segment {
	var cwd string
	return &tray.Segment{
		Name: "path",
		Setup: func() {
			if wd, err := os.Getwd(); err == nil {
				cwd = wd
			}
		},
		Fetch: func() string { return AbbreviatePath(cwd, 3) },
	}
}

// AbbreviatePath replaces the home prefix with ~ and keeps at most keep
// trailing components, eliding the rest with an ellipsis.
func AbbreviatePath(p string, keep int) string {
	if p == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if p == home {
			return "~"
		}
		if strings.HasPrefix(p, home+string(filepath.Separator)) {
			p = "~" + p[len(home):]
		}
	}
	parts := strings.Split(p, string(filepath.Separator))
	if len(parts) <= keep+1 {
		return p
	}
	elems := append([]string{parts[0], "…"}, parts[len(parts)-keep:]...)
	return strings.Join(elems, string(filepath.Separator))
}
