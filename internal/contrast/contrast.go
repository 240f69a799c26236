// SPDX-License-Identifier: MIT

// Package contrast scores foreground/background pairs and nudges
// foregrounds until they meet a target ratio.
package contrast

import (
	"fmt"
	"math"
	"strings"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// Model supplies the luminance used by Ratio and a secondary perceptual
// score. Swapping the model never changes the enforcer's search.
type Model interface {
	Name() string
	Luminance(c oklch.Color) float64
	Perceptual(fg, bg oklch.Color) float64
}

var (
	// Lightness treats OKLCH L as luminance and scores |ΔL|×100.
	Lightness Model = lightnessModel{}
	// WCAG uses sRGB-linearized relative luminance and an APCA Lc score.
	WCAG Model = wcagModel{}
)

// ParseModel maps a config name to a Model. An empty name selects Lightness.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "oklch", "lightness":
		return Lightness, nil
	case "wcag", "apca":
		return WCAG, nil
	default:
		return nil, fmt.Errorf("unknown contrast model %q (want oklch or wcag)", name)
	}
}

type lightnessModel struct{}

func (lightnessModel) Name() string { return "oklch" }

func (lightnessModel) Luminance(c oklch.Color) float64 { return c.L }

func (lightnessModel) Perceptual(fg, bg oklch.Color) float64 {
	return math.Abs(fg.L-bg.L) * 100
}

type wcagModel struct{}

func (wcagModel) Name() string { return "wcag" }

func (wcagModel) Luminance(c oklch.Color) float64 {
	r, g, b := c.SRGB().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func (wcagModel) Perceptual(fg, bg oklch.Color) float64 {
	return math.Abs(APCA(fg, bg))
}

// Result is the outcome of checking one pair.
type Result struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
	APCA  float64 `json:"apca"`
}

// Ratio is (lighter+0.05)/(darker+0.05) over the model's luminance.
func Ratio(m Model, fg, bg oklch.Color) float64 {
	l1, l2 := m.Luminance(fg), m.Luminance(bg)
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// Check scores a pair against the AA and AAA thresholds.
func Check(m Model, fg, bg oklch.Color) Result {
	ratio := Ratio(m, fg, bg)
	return Result{
		Ratio: ratio,
		AA:    ratio >= ThresholdAA,
		AAA:   ratio >= ThresholdAAA,
		APCA:  m.Perceptual(fg, bg),
	}
}
