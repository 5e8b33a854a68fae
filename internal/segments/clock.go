package segments

import (
	"time"

	"trayline/internal/tray"
)

// Clock shows the wall clock, minute resolution.
func Clock() *tray.Segment {
	return &tray.Segment{
		Name:  "clock",
		Fetch: func() string { return time.Now().Format("15:04") },
	}
}

// Date shows the abbreviated calendar date.
func Date() *tray.Segment {
	return &tray.Segment{
		Name:  "date",
		Fetch: func() string { return time.Now().Format("Jan 02") },
	}
}
