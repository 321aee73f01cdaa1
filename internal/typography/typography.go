// Package typography resolves compact style tokens ("B32", "R16") into font
// family and scaled font size.
package typography

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/scale"
)

// Weight codes.
const (
	WeightRegular  = 'R'
	WeightMedium   = 'M'
	WeightSemiBold = 'S'
	WeightBold     = 'B'
)

// DefaultSize is used when a token's size is missing or unknown.
const DefaultSize = 16

// FontFamilies maps weight codes to Urbanist font families.
var FontFamilies = map[rune]string{
	WeightRegular:  "Urbanist-Regular",
	WeightMedium:   "Urbanist-Medium",
	WeightSemiBold: "Urbanist-SemiBold",
	WeightBold:     "Urbanist-Bold",
}

// Sizes are the design sizes a token may name.
var Sizes = []int{12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36, 40, 46}

// Resolver maps style tokens to typography using a size table scaled once
// for a viewport.
type Resolver struct {
	sizes map[int]float64
}

// NewResolver builds the scaled size table for s.
func NewResolver(s scale.Scaler) *Resolver {
	sizes := make(map[int]float64, len(Sizes))
	for _, size := range Sizes {
		sizes[size] = s.ModerateDefault(float64(size))
	}
	return &Resolver{sizes: sizes}
}

// Resolve returns the font family and scaled size for token.
// Unknown weights resolve to Regular and unknown or unparseable sizes to
// DefaultSize; Resolve never fails.
func (r *Resolver) Resolve(token domain.StyleToken) domain.Typography {
	weight, rest := splitToken(string(token))

	family, ok := FontFamilies[weight]
	if !ok {
		family = FontFamilies[WeightRegular]
	}

	size := r.sizes[DefaultSize]
	if n, parsed := leadingInt(rest); parsed {
		if scaled, known := r.sizes[n]; known {
			size = scaled
		}
	}

	return domain.Typography{FontFamily: family, FontSize: size}
}

// Size returns the scaled value for a design size, falling back to DefaultSize.
func (r *Resolver) Size(size int) float64 {
	if v, ok := r.sizes[size]; ok {
		return v
	}
	return r.sizes[DefaultSize]
}

func splitToken(token string) (rune, string) {
	if token == "" {
		return 0, ""
	}
	weight, width := utf8.DecodeRuneInString(token)
	return weight, token[width:]
}

// leadingInt parses an optional sign followed by digits at the start of s,
// after leading whitespace. A 0x or 0X prefix selects hexadecimal, otherwise
// digits are decimal. Trailing characters are ignored.
// parsed is false when no digit is found.
func leadingInt(s string) (n int, parsed bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			break
		}
		// Anything this large is not a table size anyway.
		if n > 1<<20 {
			return 0, false
		}
		n = n*base + d
		parsed = true
	}

	if negative {
		n = -n
	}
	return n, parsed
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// Preset names a commonly used token.
type Preset struct {
	Name  string
	Token domain.StyleToken
}

// Presets are the named text styles used across screens.
var Presets = []Preset{
	// Headlines
	{Name: "H1", Token: "B32"},
	{Name: "H2", Token: "B28"},
	{Name: "H3", Token: "S24"},
	{Name: "H4", Token: "S20"},
	{Name: "H5", Token: "M18"},
	{Name: "H6", Token: "M16"},

	// Body text
	{Name: "Body1", Token: "R16"},
	{Name: "Body2", Token: "R14"},

	// UI elements
	{Name: "Button", Token: "S16"},
	{Name: "Caption", Token: "R12"},
	{Name: "Overline", Token: "S12"},

	// Conversation
	{Name: "MessageText", Token: "R16"},
	{Name: "MessageTime", Token: "R12"},
	{Name: "UserName", Token: "S14"},
}

// Preset resolves a named preset. ok is false for unknown names.
func (r *Resolver) Preset(name string) (domain.Typography, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return r.Resolve(p.Token), true
		}
	}
	return domain.Typography{}, false
}

// Weights returns the known weight codes in a stable order.
func Weights() []rune {
	out := make([]rune, 0, len(FontFamilies))
	for w := range FontFamilies {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
