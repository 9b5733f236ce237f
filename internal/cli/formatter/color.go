package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pomo-cli/pomo/internal/phase"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen = lipgloss.Color("#8ec07c")
	ColorRed   = lipgloss.Color("#fb4934")
	ColorBlue  = lipgloss.Color("#83a598")
	ColorDim   = lipgloss.Color("#928374")
)

// Predefined lipgloss styles.
var (
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed   = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue  = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
)

// PhaseColor returns the lipgloss style for the given phase kind: red for
// work, blue for rest, green for done.
func PhaseColor(k phase.Kind) lipgloss.Style {
	switch k {
	case phase.Work:
		return StyleRed
	case phase.Rest:
		return StyleBlue
	case phase.Done:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
