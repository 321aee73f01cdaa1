package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amicly/appearance/internal/domain"
)

// Swatch renders a two-cell block filled with color. Without styling it
// returns the color value itself.
func Swatch(color string) string {
	if !Enabled() {
		return color
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// Strip renders one swatch per palette color, side by side.
func Strip(p domain.Palette) string {
	colors := p.Colors()
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, Swatch(c.Value))
	}
	if !Enabled() {
		return strings.Join(parts, " ")
	}
	return strings.Join(parts, "")
}

// Card renders text the way a card of palette p would look: card background,
// text color and a rounded border in the border color.
func Card(p domain.Palette, text string, width int) string {
	if !Enabled() {
		return text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.CardBackground)).
		Foreground(lipgloss.Color(p.Text)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1).
		Width(width).
		Render(text)
}
