package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the player.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Canvas  lipgloss.Color
	Muted   lipgloss.Color
	Bodies  []lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:    "night",
		Primary: lipgloss.Color("#00ffff"),
		Canvas:  lipgloss.Color("#c0c0d0"),
		Muted:   lipgloss.Color("#666688"),
		Bodies:  []lipgloss.Color{"#ffcc00", "#ff6b6b", "#00ff88", "#0088ff", "#ff00ff", "#feca57"},
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Canvas:  lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
		Bodies:  []lipgloss.Color{"#88ff88", "#ffff00", "#00ffaa", "#aaff00"},
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Canvas:  lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
		Bodies:  []lipgloss.Color{"#ffffff", "#0088ff", "#ffaa00"},
	}

	Themes = []Theme{ThemeNight, ThemeRetro, ThemeMinimal}
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(34)
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)

	// Title styles command headers printed by the CLI.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	// Subtle styles secondary CLI output.
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// BodyColor cycles through the theme's body palette.
func (t Theme) BodyColor(i int) lipgloss.Color {
	return t.Bodies[i%len(t.Bodies)]
}

// Next returns the theme after t in Themes.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
