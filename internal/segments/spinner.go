package segments

import (
	"github.com/charmbracelet/bubbles/spinner"

	"trayline/internal/tray"
)

// Spinner cycles a busy indicator one frame per refresh. The frame set comes
// from the bubbles spinner catalog so it matches the host UI's look.
func Spinner() *tray.Segment {
	frames := spinner.MiniDot.Frames
	i := 0
	return &tray.Segment{
		Name: "spinner",
		Refresh: func() {
			i = (i + 1) % len(frames)
		},
		Fetch: func() string { return frames[i] },
	}
}
