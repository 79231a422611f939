package view

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette subset
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Theme holds the three cell styles of the grid.
type Theme struct {
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Active   lipgloss.Style
}

// DefaultTheme returns the stock styles.
func DefaultTheme() Theme {
	return NewTheme(colorLavender, colorGreen)
}

// NewTheme builds the styles around a selected and an active accent. Empty
// colors fall back to the defaults.
func NewTheme(selected, active lipgloss.Color) Theme {
	if selected == "" {
		selected = colorLavender
	}
	if active == "" {
		active = colorGreen
	}
	cell := lipgloss.NewStyle().
		Foreground(colorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	return Theme{
		Cell:     cell,
		Selected: cell.Foreground(colorBase).Background(selected).Bold(true).BorderForeground(selected),
		Active:   cell.Foreground(colorBase).Background(active).Bold(true).BorderForeground(colorPink),
	}
}

// dimStyle renders the hint under the grid.
var dimStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
