package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	mode    lipgloss.Style
	output  lipgloss.Style
	pressed lipgloss.Style
	idle    lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		mode:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		output:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		pressed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		idle:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
