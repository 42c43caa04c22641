package report

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // headings
	colorAccent  = lipgloss.Color("#FFD700") // totals and counts
	colorDanger  = lipgloss.Color("#FF5252") // findings and discrepancies
	colorMuted   = lipgloss.Color("#8C8C8C") // secondary detail
)

var (
	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleTotal = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleProblem = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// heading renders a section title with a trailing newline.
func heading(title string) string {
	return styleHeading.Render(title) + "\n"
}
