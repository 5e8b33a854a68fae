package ui

import (
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// splitAlign separates a region text into its alignment marker and payload.
// The marker is "\r" optionally followed by CSI cursor-forward; the encoded
// column is where the payload starts.
func splitAlign(text string) (col int, payload string) {
	if !strings.HasPrefix(text, "\r") {
		return 0, text
	}
	rest := text[1:]
	if strings.HasPrefix(rest, "\x1b[") {
		if end := strings.Index(rest, "C"); end > 2 {
			if n, err := strconv.Atoi(rest[2:end]); err == nil {
				return n, rest[end+1:]
			}
		}
	}
	return 0, rest
}

// placeRegion lays a region's text into a width-column row, honoring the
// alignment marker. left occupies the start of the row (transient message or
// nothing); when both cannot coexist the region yields for this frame.
func placeRegion(left, regionText string, width int) string {
	col, payload := splitAlign(regionText)
	if payload == "" {
		return padTo(left, width)
	}
	leftW := xansi.StringWidth(left)
	gap := col - leftW
	if left != "" && gap < 1 {
		return padTo(left, width)
	}
	if gap < 0 {
		gap = 0
	}
	line := left + strings.Repeat(" ", gap) + payload
	return padTo(line, width)
}

func padTo(s string, width int) string {
	if pad := width - xansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
