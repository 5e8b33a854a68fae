package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"trayline/internal/engine"
	"trayline/internal/trayconf"
)

// Run launches the interactive segment toggle form. The option list is the
// resolver's toggle universe, optionally narrowed by a fuzzy query; the
// currently shown segments come preselected. The resulting include/exclude
// set runs through the session toggle logic and the final list is printed.
// With save, the list also becomes the long-style default in tray.json.
func Run(query string, save bool) error {
	f, err := trayconf.Load()
	if err != nil {
		return err
	}
	eng, err := engine.New(f, nil, nil)
	if err != nil {
		return err
	}

	universe := eng.Resolver.ToggleUniverse()
	if query != "" {
		matches := fuzzy.Find(query, universe)
		narrowed := make([]string, 0, len(matches))
		for _, m := range matches {
			narrowed = append(narrowed, universe[m.Index])
		}
		if len(narrowed) == 0 {
			return fmt.Errorf("no segment matches %q", query)
		}
		universe = narrowed
	}

	shown := make(map[string]bool)
	var selected []string
	for _, name := range eng.Resolver.Current() {
		shown[name] = true
		for _, u := range universe {
			if u == name {
				selected = append(selected, name)
				break
			}
		}
	}

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)

	opts := make([]huh.Option[string], 0, len(universe))
	for _, name := range universe {
		opts = append(opts, huh.NewOption(name, name))
	}
	height := len(opts)
	if height > 18 {
		height = 18
	}
	if height < 3 {
		height = 3
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Toggle segments").Description("Space selects, Enter applies."),
			huh.NewMultiSelect[string]().
				Title("Segments").
				Options(opts...).
				Height(height).
				Value(&selected),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	picked := make(map[string]bool, len(selected))
	for _, name := range selected {
		picked[name] = true
	}
	tg := eng.Resolver.Toggles()
	for _, name := range universe {
		switch {
		case picked[name] && !shown[name]:
			tg.Set(name, true)
		case !picked[name] && shown[name]:
			tg.Set(name, false)
		}
	}

	result := eng.Resolver.Current()
	fmt.Printf("\nactive segments: %s\n", strings.Join(result, " "))

	if save {
		f.Defaults.Long = result
		if err := trayconf.Save(f); err != nil {
			return err
		}
		fmt.Println("saved as long-style defaults in tray.json")
	}
	return nil
}
