package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// Chart cells, keyed by the printed abbreviation
	cellStyles = map[string]lipgloss.Style{
		"H":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		"S":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		"Dh": lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		"Ds": lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		"P":  lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		"Pd": lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		"-":  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}

	highlightStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)
)
