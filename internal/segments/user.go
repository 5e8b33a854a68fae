package segments

import (
	"os"
	"os/user"

	"trayline/internal/tray"
)

// User shows user@host. Both values are stable for the process lifetime, so
// Setup resolves them once and Fetch just replays the cached string.
func User() *tray.Segment {
	var label string
	return &tray.Segment{
		Name: "user",
		Setup: func() {
			name := ""
			if u, err := user.Current(); err == nil {
				name = u.Username
			}
			host, _ := os.Hostname()
			switch {
			case name != "" && host != "":
				label = name + "@" + host
			case name != "":
				label = name
			default:
				label = host
			}
		},
		Fetch: func() string { return label },
	}
}
