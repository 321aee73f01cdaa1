package typography

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/scale"
)

func newTestResolver() (*Resolver, scale.Scaler) {
	s := scale.New(scale.Viewport{Width: 750, Height: 1624})
	return NewResolver(s), s
}

func TestResolve(t *testing.T) {
	r, s := newTestResolver()

	tests := []struct {
		name       string
		token      domain.StyleToken
		wantFamily string
		wantSize   float64
	}{
		{name: "bold 32", token: "B32", wantFamily: "Urbanist-Bold", wantSize: s.ModerateDefault(32)},
		{name: "regular 16", token: "R16", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "medium 18", token: "M18", wantFamily: "Urbanist-Medium", wantSize: s.ModerateDefault(18)},
		{name: "semibold 46", token: "S46", wantFamily: "Urbanist-SemiBold", wantSize: s.ModerateDefault(46)},
		{name: "unknown weight and size", token: "X99", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "unknown size keeps weight", token: "B15", wantFamily: "Urbanist-Bold", wantSize: s.ModerateDefault(16)},
		{name: "lowercase weight is unknown", token: "b32", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(32)},
		{name: "not a number", token: "Babc", wantFamily: "Urbanist-Bold", wantSize: s.ModerateDefault(16)},
		{name: "weight only", token: "S", wantFamily: "Urbanist-SemiBold", wantSize: s.ModerateDefault(16)},
		{name: "empty token", token: "", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "trailing garbage ignored", token: "B24px", wantFamily: "Urbanist-Bold", wantSize: s.ModerateDefault(24)},
		{name: "decimal truncates", token: "R14.5", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(14)},
		{name: "negative size", token: "R-12", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "huge size", token: "R99999999999999999999", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "multibyte weight", token: "é32", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(32)},
		{name: "hex size", token: "B0x20", wantFamily: "Urbanist-Bold", wantSize: s.ModerateDefault(32)},
		{name: "hex prefix without digits", token: "R0x", wantFamily: "Urbanist-Regular", wantSize: s.ModerateDefault(16)},
		{name: "leading zero is decimal", token: "M018", wantFamily: "Urbanist-Medium", wantSize: s.ModerateDefault(18)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.token)
			require.Equal(t, tt.wantFamily, got.FontFamily)
			require.Equal(t, tt.wantSize, got.FontSize)
		})
	}
}

func TestResolve_ReferenceViewportSizesUnchanged(t *testing.T) {
	r := NewResolver(scale.New(scale.Reference()))

	for _, size := range Sizes {
		require.Equal(t, float64(size), r.Size(size))
	}
	require.Equal(t, 16.0, r.Size(17))
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in         string
		want       int
		wantParsed bool
	}{
		{"32", 32, true},
		{"  12", 12, true},
		{"+20", 20, true},
		{"-8", -8, true},
		{"12abc", 12, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"0x20", 32, true},
		{"0X1e", 30, true},
		{"-0x10", -16, true},
		{"0x", 0, false},
		{"0xg", 0, false},
		{"0x1fz", 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, parsed := leadingInt(tt.in)
			require.Equal(t, tt.wantParsed, parsed)
			if parsed {
				require.Equal(t, tt.want, n)
			}
		})
	}
}

func TestPreset(t *testing.T) {
	r, s := newTestResolver()

	h1, ok := r.Preset("H1")
	require.True(t, ok)
	require.Equal(t, "Urbanist-Bold", h1.FontFamily)
	require.Equal(t, s.ModerateDefault(32), h1.FontSize)

	caption, ok := r.Preset("caption")
	require.True(t, ok)
	require.Equal(t, r.Resolve("R12"), caption)

	_, ok = r.Preset("Jumbo")
	require.False(t, ok)
}

func TestPresets_AllResolveToKnownSizes(t *testing.T) {
	r, _ := newTestResolver()

	for _, p := range Presets {
		_, parsed := leadingInt(string(p.Token)[1:])
		require.True(t, parsed, "preset %s", p.Name)
		require.NotZero(t, r.Resolve(p.Token).FontSize)
	}
}

func TestWeights_Sorted(t *testing.T) {
	require.Equal(t, []rune{'B', 'M', 'R', 'S'}, Weights())
}
