package tui

import "github.com/charmbracelet/lipgloss"

const (
	themeLight = "light"
	themeDark  = "dark"
)

type theme struct {
	name       string
	text       lipgloss.Style
	muted      lipgloss.Style
	primary    lipgloss.Style
	warning    lipgloss.Style
	card       lipgloss.Style
	cardTitle  lipgloss.Style
	densityBox lipgloss.Style
	modal      lipgloss.Style
	footer     lipgloss.Style
}

func newTheme(name string) theme {
	if name == themeDark {
		return buildTheme(themeDark, "#F0F0F0", "#8C8C8C", "#C89A3A", "#FF4D4F", "#4A4A4A")
	}
	return buildTheme(themeLight, "#1F1F1F", "#6E6E6E", "#3A6EC8", "#D4380D", "#B8B8B8")
}

func buildTheme(name, text, muted, primary, warning, border string) theme {
	return theme{
		name:    name,
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		primary: lipgloss.NewStyle().Foreground(lipgloss.Color(primary)).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color(warning)).Bold(true),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(border)),
		cardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		densityBox: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(lipgloss.Color(border)),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(primary)).
			Padding(1, 2),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

func (t theme) toggled() theme {
	if t.name == themeDark {
		return newTheme(themeLight)
	}
	return newTheme(themeDark)
}

// ValidTheme reports whether name is a supported theme.
func ValidTheme(name string) bool {
	return name == themeLight || name == themeDark
}
