package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Card     lipgloss.Style
	Form     lipgloss.Style
	Notice   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("25")),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Form: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Notice: lipgloss.NewStyle().
			Padding(1, 3).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("203")),
	}
}
