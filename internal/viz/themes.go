package viz

import "github.com/charmbracelet/lipgloss"

// Theme maps step roles to colours.
type Theme struct {
	Name      string
	Primary   lipgloss.Color // headings, active cursor
	Secondary lipgloss.Color // frontier, pending work
	Accent    lipgloss.Color // focus of the current step
	Text      lipgloss.Color
	Muted     lipgloss.Color // discarded or idle cells
	Success   lipgloss.Color // settled, sorted, found
	Warning   lipgloss.Color // pivots, cache hits
	Error     lipgloss.Color // not found, impossible
}

var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#5f87ff"),
		Accent:    lipgloss.Color("#ff88ff"),
		Text:      lipgloss.Color("#e4e4e4"),
		Muted:     lipgloss.Color("#585858"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	// ThemeContrast keeps compare, pivot and settled cells apart for
	// colour-blind viewers (Okabe-Ito hues).
	ThemeContrast = Theme{
		Name:      "contrast",
		Primary:   lipgloss.Color("#56b4e9"),
		Secondary: lipgloss.Color("#0072b2"),
		Accent:    lipgloss.Color("#e69f00"),
		Text:      lipgloss.Color("#f0f0f0"),
		Muted:     lipgloss.Color("#6c6c6c"),
		Success:   lipgloss.Color("#009e73"),
		Warning:   lipgloss.Color("#f0e442"),
		Error:     lipgloss.Color("#d55e00"),
	}

	ThemeChalk = Theme{
		Name:      "chalk",
		Primary:   lipgloss.Color("#f5f1e3"),
		Secondary: lipgloss.Color("#9fc5e8"),
		Accent:    lipgloss.Color("#ffd966"),
		Text:      lipgloss.Color("#e8e4d6"),
		Muted:     lipgloss.Color("#5b6b5e"),
		Success:   lipgloss.Color("#b6d7a8"),
		Warning:   lipgloss.Color("#f6b26b"),
		Error:     lipgloss.Color("#ea9999"),
	}

	// ThemePaper is for light terminal backgrounds.
	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#1d3557"),
		Secondary: lipgloss.Color("#457b9d"),
		Accent:    lipgloss.Color("#c1121f"),
		Text:      lipgloss.Color("#222222"),
		Muted:     lipgloss.Color("#9a9a9a"),
		Success:   lipgloss.Color("#2a7a3b"),
		Warning:   lipgloss.Color("#b5651d"),
		Error:     lipgloss.Color("#8b0000"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#bcbcbc"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#d0d0d0"),
		Muted:     lipgloss.Color("#4e4e4e"),
		Success:   lipgloss.Color("#e4e4e4"),
		Warning:   lipgloss.Color("#a8a8a8"),
		Error:     lipgloss.Color("#808080"),
	}

	CurrentTheme = ThemeDefault

	Themes = []Theme{
		ThemeDefault,
		ThemeContrast,
		ThemeChalk,
		ThemePaper,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// SetTheme changes the current theme and rebuilds the derived styles.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
	current = newStyles(CurrentTheme)
}

// NextTheme cycles to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
	SetTheme(names[0])
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
