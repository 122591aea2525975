package output

import "github.com/charmbracelet/lipgloss"

// Color palette. Never use inline lipgloss.Color literals outside this file.
var (
	// ColorGreen marks completed steps.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks degraded but non-fatal outcomes.
	ColorYellow = lipgloss.Color("220")

	// ColorRed marks fatal outcomes.
	ColorRed = lipgloss.Color("196")

	// ColorCyan is used for values the user typed: names, paths, URLs.
	ColorCyan = lipgloss.Color("14")
)

type styles struct {
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	noun    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(ColorGreen),
		warn:    r.NewStyle().Foreground(ColorYellow),
		err:     r.NewStyle().Foreground(ColorRed),
		noun:    r.NewStyle().Foreground(ColorCyan),
		dim:     r.NewStyle().Faint(true),
	}
}
