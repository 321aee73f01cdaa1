package domain

// ThemeID identifies one entry of the theme catalog.
type ThemeID string

const (
	ThemeLight      ThemeID = "light"
	ThemeLightBlue  ThemeID = "lightBlue"
	ThemeLightWarm  ThemeID = "lightWarm"
	ThemeDark       ThemeID = "dark"
	ThemeDarkBlue   ThemeID = "darkBlue"
	ThemeDarkPurple ThemeID = "darkPurple"
)

// DefaultTheme is applied on first run and whenever the stored choice is unusable.
const DefaultTheme = ThemeLight

// ThemeStorageKey is the preference key holding the selected ThemeID.
const ThemeStorageKey = "AMICLY_THEME"

// ThemeIDs lists every known theme in display order.
var ThemeIDs = []ThemeID{
	ThemeLight,
	ThemeLightBlue,
	ThemeLightWarm,
	ThemeDark,
	ThemeDarkBlue,
	ThemeDarkPurple,
}

// Valid reports whether id names a catalog theme.
func (id ThemeID) Valid() bool {
	for _, known := range ThemeIDs {
		if id == known {
			return true
		}
	}
	return false
}

func (id ThemeID) String() string {
	return string(id)
}

// StatusBarStyle is the platform chrome hint carried by every palette.
type StatusBarStyle string

const (
	StatusBarDarkContent  StatusBarStyle = "dark-content"
	StatusBarLightContent StatusBarStyle = "light-content"
)

// Valid reports whether s is one of the two known hints.
func (s StatusBarStyle) Valid() bool {
	return s == StatusBarDarkContent || s == StatusBarLightContent
}

// Palette holds the concrete colors of one theme.
// Colors are #RRGGBB hex strings.
type Palette struct {
	Background     string `json:"backgroundColor"`
	Text           string `json:"textColor"`
	Primary        string `json:"primaryColor"`
	Secondary      string `json:"secondaryColor"`
	Accent         string `json:"accentColor"`
	Border         string `json:"borderColor"`
	CardBackground string `json:"cardBackground"`
	Shadow         string `json:"shadowColor"`

	StatusBar StatusBarStyle `json:"statusBarStyle"`
}

// Colors returns the palette colors paired with their display names, in field order.
func (p Palette) Colors() []NamedColor {
	return []NamedColor{
		{Name: "background", Value: p.Background},
		{Name: "text", Value: p.Text},
		{Name: "primary", Value: p.Primary},
		{Name: "secondary", Value: p.Secondary},
		{Name: "accent", Value: p.Accent},
		{Name: "border", Value: p.Border},
		{Name: "card", Value: p.CardBackground},
		{Name: "shadow", Value: p.Shadow},
	}
}

// NamedColor is a single palette entry.
type NamedColor struct {
	Name  string
	Value string
}

// ThemeState is the value held by the theme store.
// Palette is always the catalog palette of ThemeType.
type ThemeState struct {
	ThemeType ThemeID `json:"themeType"`
	Palette   Palette `json:"theme"`
}

// StyleToken is a compact typography code such as "B32" (bold, size 32).
type StyleToken string

// Typography is the resolved form of a StyleToken.
type Typography struct {
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
}
