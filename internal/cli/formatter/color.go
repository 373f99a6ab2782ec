package formatter

import (
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders s in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// CoreColor returns the lipgloss style for the given universal moral value.
func CoreColor(v domain.MoralValue) lipgloss.Style {
	switch v {
	case domain.Good:
		return StyleGreen
	case domain.Bad:
		return StyleRed
	case domain.Neutral:
		return StyleYellow
	default:
		return StyleDim
	}
}

// CoreIndicator returns a colored indicator string such as "● GOOD".
func CoreIndicator(v domain.MoralValue) string {
	switch v {
	case domain.Good:
		return StyleGreen.Render("● GOOD")
	case domain.Bad:
		return StyleRed.Render("● BAD")
	case domain.Neutral:
		return StyleYellow.Render("● NEUTRAL")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}
