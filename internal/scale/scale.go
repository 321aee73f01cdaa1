// Package scale converts design-reference sizes to device-relative sizes.
package scale

import (
	"math"
	"os"
	"strconv"
)

// Design reference dimensions.
const (
	ReferenceWidth  = 375.0
	ReferenceHeight = 812.0
)

// DefaultFactor is the moderate scale factor used when none is given.
const DefaultFactor = 0.5

// Viewport is the device viewport captured once at process start.
type Viewport struct {
	Width  float64
	Height float64
}

// Reference returns a viewport equal to the design reference.
func Reference() Viewport {
	return Viewport{Width: ReferenceWidth, Height: ReferenceHeight}
}

// CaptureViewport builds a Viewport from configuration values.
// AMICLY_VIEWPORT_WIDTH and AMICLY_VIEWPORT_HEIGHT take precedence over cfg.
// Missing, unparseable or non-positive values fall back to the reference size.
func CaptureViewport(cfg map[string]string) Viewport {
	return Viewport{
		Width:  dimension(os.Getenv("AMICLY_VIEWPORT_WIDTH"), cfg["viewport_width"], ReferenceWidth),
		Height: dimension(os.Getenv("AMICLY_VIEWPORT_HEIGHT"), cfg["viewport_height"], ReferenceHeight),
	}
}

func dimension(env, cfg string, fallback float64) float64 {
	for _, raw := range []string{env, cfg} {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		return v
	}
	return fallback
}

// Scaler applies responsive scaling for a fixed viewport.
// The zero value is not usable; use New.
type Scaler struct {
	viewport Viewport
}

// New returns a Scaler for the given viewport.
func New(v Viewport) Scaler {
	if v.Width <= 0 {
		v.Width = ReferenceWidth
	}
	if v.Height <= 0 {
		v.Height = ReferenceHeight
	}
	return Scaler{viewport: v}
}

// Viewport returns the captured viewport.
func (s Scaler) Viewport() Viewport {
	return s.viewport
}

// Horizontal scales size by viewport width / reference width.
func (s Scaler) Horizontal(size float64) float64 {
	return size * (s.viewport.Width / ReferenceWidth)
}

// Vertical scales size by viewport height / reference height.
func (s Scaler) Vertical(size float64) float64 {
	return size * (s.viewport.Height / ReferenceHeight)
}

// Moderate moves size toward its horizontal scale by factor.
// factor is clamped to [0, 1]; NaN uses DefaultFactor.
func (s Scaler) Moderate(size, factor float64) float64 {
	switch {
	case math.IsNaN(factor):
		factor = DefaultFactor
	case factor < 0:
		factor = 0
	case factor > 1:
		factor = 1
	}

	switch factor {
	case 0:
		return size
	case 1:
		return s.Horizontal(size)
	}
	return size + (s.Horizontal(size)-size)*factor
}

// ModerateDefault is Moderate with DefaultFactor.
func (s Scaler) ModerateDefault(size float64) float64 {
	return s.Moderate(size, DefaultFactor)
}
