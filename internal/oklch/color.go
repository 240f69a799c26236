// SPDX-License-Identifier: MIT

// Package oklch is the color-space layer of the engine. Every color the
// engine touches is an OKLCH value; sRGB only appears at the edges (parsing
// hex/rgb/hsl input and projecting to hex for display).
package oklch

import (
	"fmt"
	"math"
	"strings"
)

// MaxChroma is the working chroma ceiling used by intermediate math.
// Emitted colors are further clamped to a Gamut ceiling.
const MaxChroma = 0.4

// Color is an OKLCH color. Alpha is nil for fully opaque colors.
type Color struct {
	L     float64  `json:"l"`
	C     float64  `json:"c"`
	H     float64  `json:"h"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// New returns an opaque color clamped to the working ceiling.
func New(l, c, h float64) Color {
	return Color{L: l, C: c, H: h}.Clamped()
}

// WithAlpha returns a copy of c carrying the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = &a
	return c
}

// Clamped projects c into the working range: L in [0,1], C in [0,MaxChroma],
// H normalized to [0,360). Alpha is passed through.
func (c Color) Clamped() Color {
	return clamp(c, MaxChroma)
}

// Gamut names a target display gamut and carries its chroma ceiling.
type Gamut string

const (
	SRGB    Gamut = "srgb"
	P3      Gamut = "p3"
	Rec2020 Gamut = "rec2020"
)

// ChromaMax returns the chroma ceiling for the gamut. Unknown gamuts get the
// sRGB ceiling.
func (g Gamut) ChromaMax() float64 {
	switch g {
	case P3:
		return 0.37
	case Rec2020:
		return MaxChroma
	default:
		return 0.33
	}
}

// ParseGamut validates a gamut name. An empty name selects sRGB.
func ParseGamut(name string) (Gamut, error) {
	switch g := Gamut(strings.ToLower(strings.TrimSpace(name))); g {
	case "":
		return SRGB, nil
	case SRGB, P3, Rec2020:
		return g, nil
	default:
		return "", fmt.Errorf("unknown gamut %q (want srgb, p3 or rec2020)", name)
	}
}

// Clamp projects c into the given gamut.
func Clamp(c Color, g Gamut) Color {
	return clamp(c, g.ChromaMax())
}

func clamp(c Color, chromaMax float64) Color {
	return Color{
		L:     clampFloat(finite(c.L), 0, 1),
		C:     clampFloat(finite(c.C), 0, chromaMax),
		H:     NormalizeHue(finite(c.H)),
		Alpha: c.Alpha,
	}
}

// AdjustLightness shifts L by delta.
func AdjustLightness(c Color, delta float64) Color {
	c = c.Clamped()
	c.L += delta
	return c.Clamped()
}

// AdjustChroma shifts C by delta.
func AdjustChroma(c Color, delta float64) Color {
	c = c.Clamped()
	c.C += delta
	return c.Clamped()
}

// AdjustHue rotates H by delta degrees, wrapping in both directions.
func AdjustHue(c Color, delta float64) Color {
	c = c.Clamped()
	c.H += delta
	return c.Clamped()
}

// NormalizeHue maps any angle onto [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance is the shortest angular distance between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HueMidpoint returns the midpoint of the shorter arc between two hues.
func HueMidpoint(a, b float64) float64 {
	a, b = NormalizeHue(a), NormalizeHue(b)
	if HueDistance(a, b) < math.Abs(a-b) {
		return NormalizeHue((a + b + 360) / 2)
	}
	return (a + b) / 2
}

func clampFloat(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
