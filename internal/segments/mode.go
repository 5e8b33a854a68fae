package segments

import (
	"strings"

	"trayline/internal/tray"
)

// Mode shows the active editing mode's last path component, bracketed.
// active supplies the live mode identifier from the resolver.
func Mode(active func() string) *tray.Segment {
	return &tray.Segment{
		Name: "mode",
		Fetch: func() string {
			m := active()
			if m == "" {
				return ""
			}
			if i := strings.LastIndex(m, "/"); i >= 0 {
				m = m[i+1:]
			}
			return "[" + m + "]"
		},
	}
}
