package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the host's color palette and common styles.
type designTheme struct {
	Primary   lipgloss.Color
	Yellow    lipgloss.Color
	Red       lipgloss.Color
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Bg        lipgloss.Color
	BgSoft    lipgloss.Color
	OnAccent  lipgloss.Color

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

var theme = designTheme{
	Primary:   lipgloss.Color("#4d9375"),
	Yellow:    lipgloss.Color("#e6cc77"),
	Red:       lipgloss.Color("#cb7676"),
	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),
	Bg:        lipgloss.Color("#181818"),
	BgSoft:    lipgloss.Color("#292929"),
	OnAccent:  lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// barStyle paints the status line rows.
func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.BarFG).Background(theme.BarBG)
}

// chipOn renders an active segment chip.
func chipOn() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.OnAccent).Background(theme.Primary).Padding(0, 1)
}

// chipOff renders an inactive segment chip.
func chipOff() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Background(theme.BgSoft).Padding(0, 1)
}

// modeOn / modeOff render the mode switcher chips.
func modeOn() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.OnAccent).Background(theme.Yellow).Padding(0, 1)
}

func modeOff() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1)
}

// echoStyle renders transient messages.
func echoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Text)
}

// dimStyle renders help and secondary text.
func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Muted)
}
