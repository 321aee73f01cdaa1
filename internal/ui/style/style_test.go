package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
)

func clearNoColor(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("AMICLY_NO_COLOR", "")
}

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearNoColor(t)
	Init(false, themes.Palette(domain.ThemeDark))

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Equal(t, "test message", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearNoColor(t)
	Init(true, themes.Palette(domain.ThemeDarkPurple))

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.Contains(t, output, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "AMICLY_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearNoColor(t)
			t.Setenv(env, "1")

			Init(true, themes.Palette(domain.ThemeLight))
			require.False(t, Enabled())
			require.Equal(t, "test", Success("test"))
		})
	}
}

func TestSetPalette(t *testing.T) {
	clearNoColor(t)
	Init(true, themes.Palette(domain.ThemeLight))

	SetPalette(themes.Palette(domain.ThemeDarkBlue))
	require.Equal(t, themes.Palette(domain.ThemeDarkBlue), CurrentPalette())
}

func TestSwatch(t *testing.T) {
	clearNoColor(t)
	p := themes.Palette(domain.ThemeLightWarm)

	Init(false, p)
	require.Equal(t, p.Primary, Swatch(p.Primary))
	require.Equal(t, len(p.Colors()), len(strings.Fields(Strip(p))))
	require.Equal(t, "hello", Card(p, "hello", 20))

	Init(true, p)
	require.Contains(t, Swatch(p.Primary), "\x1b[")
	require.Contains(t, Card(p, "hello", 20), "hello")
}
