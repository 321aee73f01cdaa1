package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemeID_Valid(t *testing.T) {
	for _, id := range ThemeIDs {
		require.True(t, id.Valid(), "%s should be valid", id)
	}

	for _, s := range []string{"", "neon", "Light", "dark ", "LIGHT"} {
		require.False(t, ThemeID(s).Valid(), "%q should be invalid", s)
	}
}

func TestDefaultTheme_IsKnown(t *testing.T) {
	require.True(t, DefaultTheme.Valid())
	require.Equal(t, ThemeLight, DefaultTheme)
}

func TestStatusBarStyle_Valid(t *testing.T) {
	require.True(t, StatusBarDarkContent.Valid())
	require.True(t, StatusBarLightContent.Valid())
	require.False(t, StatusBarStyle("default").Valid())
}

func TestPalette_Colors_Order(t *testing.T) {
	p := Palette{
		Background:     "#000001",
		Text:           "#000002",
		Primary:        "#000003",
		Secondary:      "#000004",
		Accent:         "#000005",
		Border:         "#000006",
		CardBackground: "#000007",
		Shadow:         "#000008",
	}

	colors := p.Colors()
	require.Len(t, colors, 8)
	require.Equal(t, "background", colors[0].Name)
	require.Equal(t, "#000001", colors[0].Value)
	require.Equal(t, "shadow", colors[7].Name)
	require.Equal(t, "#000008", colors[7].Value)
}

func TestConfigKeys_Lookup(t *testing.T) {
	key, ok := GetConfigKey("storage")
	require.True(t, ok)
	require.Equal(t, StorageSQLite, key.Default)

	require.True(t, IsValidConfigKey("viewport_width"))
	require.False(t, IsValidConfigKey("color_theme"))

	for _, k := range VisibleConfigKeys() {
		require.False(t, k.Hidden)
		require.NotEqual(t, ThemeStorageKey, k.Name)
	}
}
