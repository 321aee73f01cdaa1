// Package themes is the static theme catalog: one fixed palette per theme.
//
// The catalog is total over domain.ThemeIDs. Its length is checked at compile
// time and its contents at program start, so a theme cannot be added to the
// domain without a palette.
package themes

import (
	"fmt"
	"regexp"

	"github.com/amicly/appearance/internal/domain"
)

// themeCount is the number of catalog entries.
const themeCount = 6

type entry struct {
	id      domain.ThemeID
	palette domain.Palette
}

var catalog = [...]entry{
	{
		id: domain.ThemeLight,
		palette: domain.Palette{
			Background:     "#FFFFFF",
			Text:           "#000000",
			Primary:        "#FF4D67",
			Secondary:      "#F8F9FA",
			Accent:         "#007AFF",
			Border:         "#E1E5E9",
			CardBackground: "#FFFFFF",
			Shadow:         "#000000",
			StatusBar:      domain.StatusBarDarkContent,
		},
	},
	{
		id: domain.ThemeLightBlue,
		palette: domain.Palette{
			Background:     "#F0F9FF",
			Text:           "#0F172A",
			Primary:        "#FF4D67",
			Secondary:      "#E0F2FE",
			Accent:         "#0EA5E9",
			Border:         "#BAE6FD",
			CardBackground: "#FFFFFF",
			Shadow:         "#0369A1",
			StatusBar:      domain.StatusBarDarkContent,
		},
	},
	{
		id: domain.ThemeLightWarm,
		palette: domain.Palette{
			Background:     "#FFFBEB",
			Text:           "#1C1917",
			Primary:        "#FF4D67",
			Secondary:      "#FEF3C7",
			Accent:         "#F59E0B",
			Border:         "#FDE68A",
			CardBackground: "#FFFFFF",
			Shadow:         "#92400E",
			StatusBar:      domain.StatusBarDarkContent,
		},
	},
	{
		id: domain.ThemeDark,
		palette: domain.Palette{
			Background:     "#000000",
			Text:           "#FFFFFF",
			Primary:        "#FF4D67",
			Secondary:      "#1A1A1A",
			Accent:         "#007AFF",
			Border:         "#333333",
			CardBackground: "#1A1A1A",
			Shadow:         "#FFFFFF",
			StatusBar:      domain.StatusBarLightContent,
		},
	},
	{
		id: domain.ThemeDarkBlue,
		palette: domain.Palette{
			Background:     "#0F172A",
			Text:           "#F1F5F9",
			Primary:        "#FF4D67",
			Secondary:      "#1E293B",
			Accent:         "#38BDF8",
			Border:         "#334155",
			CardBackground: "#1E293B",
			Shadow:         "#F1F5F9",
			StatusBar:      domain.StatusBarLightContent,
		},
	},
	{
		id: domain.ThemeDarkPurple,
		palette: domain.Palette{
			Background:     "#1A0B2E",
			Text:           "#F3E8FF",
			Primary:        "#FF4D67",
			Secondary:      "#2D1B69",
			Accent:         "#A855F7",
			Border:         "#4C1D95",
			CardBackground: "#2D1B69",
			Shadow:         "#F3E8FF",
			StatusBar:      domain.StatusBarLightContent,
		},
	},
}

// Fails to compile unless the catalog has exactly themeCount entries.
var _ = [1]struct{}{}[len(catalog)-themeCount]

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func init() {
	if err := verify(); err != nil {
		panic("themes: " + err.Error())
	}
}

// verify checks that the catalog and domain.ThemeIDs describe the same set of
// themes, in the same order, and that every palette is complete.
func verify() error {
	if len(domain.ThemeIDs) != len(catalog) {
		return fmt.Errorf("catalog has %d themes, domain declares %d", len(catalog), len(domain.ThemeIDs))
	}

	for i, e := range catalog {
		if e.id != domain.ThemeIDs[i] {
			return fmt.Errorf("catalog entry %d is %q, want %q", i, e.id, domain.ThemeIDs[i])
		}
		if err := validatePalette(e.palette); err != nil {
			return fmt.Errorf("theme %s: %w", e.id, err)
		}
	}

	return nil
}

func validatePalette(p domain.Palette) error {
	for _, c := range p.Colors() {
		if !hexColor.MatchString(c.Value) {
			return fmt.Errorf("%s color %q is not #RRGGBB", c.Name, c.Value)
		}
	}
	if !p.StatusBar.Valid() {
		return fmt.Errorf("status bar style %q is not valid", p.StatusBar)
	}
	return nil
}

// Lookup returns the palette for id and whether id is a catalog theme.
func Lookup(id domain.ThemeID) (domain.Palette, bool) {
	for _, e := range catalog {
		if e.id == id {
			return e.palette, true
		}
	}
	return domain.Palette{}, false
}

// Palette returns the palette for id.
// Callers are expected to pass a known id; for anything else the default
// theme's palette is returned so a zero palette never escapes.
func Palette(id domain.ThemeID) domain.Palette {
	if p, ok := Lookup(id); ok {
		return p
	}
	p, _ := Lookup(domain.DefaultTheme)
	return p
}

// IsDark reports whether id is a dark variant. It is derived from the
// palette's status bar hint: dark themes use light status bar content.
func IsDark(id domain.ThemeID) bool {
	p, ok := Lookup(id)
	return ok && p.StatusBar == domain.StatusBarLightContent
}

// Parse converts a string into a catalog ThemeID.
func Parse(s string) (domain.ThemeID, error) {
	id := domain.ThemeID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTheme, s)
	}
	return id, nil
}

// IDs returns every theme in display order.
func IDs() []domain.ThemeID {
	out := make([]domain.ThemeID, len(catalog))
	for i, e := range catalog {
		out[i] = e.id
	}
	return out
}

// State builds the ThemeState for id, pairing it with its catalog palette.
func State(id domain.ThemeID) domain.ThemeState {
	return domain.ThemeState{ThemeType: id, Palette: Palette(id)}
}
