// Package style provides semantic terminal styling using lipgloss.
//
// Colors come from the active theme palette, so the CLI looks like the theme
// the user picked. When disabled, all helpers return the input string
// unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/amicly/appearance/internal/domain"
)

// Palettes have no error or muted role.
const (
	errorColor = "#E5484D"
	mutedColor = "245"
)

var (
	mu      sync.RWMutex
	enabled bool
	palette domain.Palette

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling and derives the styles from p.
// NO_COLOR and AMICLY_NO_COLOR (any non-empty value) disable styling
// regardless of enable.
func Init(enable bool, p domain.Palette) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("AMICLY_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	palette = p

	if enabled {
		initStyles(p)
	}
}

// SetPalette re-derives the styles after a theme change.
func SetPalette(p domain.Palette) {
	mu.Lock()
	defer mu.Unlock()

	palette = p
	if enabled {
		initStyles(p)
	}
}

// CurrentPalette returns the palette the styles were derived from.
func CurrentPalette() domain.Palette {
	mu.RLock()
	defer mu.RUnlock()
	return palette
}

// initStyles builds the lipgloss styles. Palettes are hex colors, so the
// profile is forced to TrueColor regardless of TTY detection.
func initStyles(p domain.Palette) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	successStyle = fg(p.Primary)
	warningStyle = fg(p.Secondary)
	errorStyle = fg(errorColor)
	infoStyle = fg(p.Accent)
	mutedStyle = fg(mutedColor)
	headerStyle = fg(p.Primary).Bold(true)
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(&successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(&headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(&mutedStyle, text) }
