// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
	"math"
	"strings"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
)

// Mode is an appearance mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists both modes, light first.
var Modes = []Mode{Light, Dark}

// BackgroundStrategy selects how surfaces are derived.
type BackgroundStrategy string

const (
	// Neutral surfaces carry only a trace of the primary hue.
	Neutral BackgroundStrategy = "neutral"
	// PrimaryTinted surfaces are lightened or darkened primary.
	PrimaryTinted BackgroundStrategy = "primary"
)

// ParseBackgroundStrategy validates a strategy name. Empty selects Neutral.
func ParseBackgroundStrategy(name string) (BackgroundStrategy, error) {
	switch s := BackgroundStrategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return Neutral, nil
	case Neutral, PrimaryTinted:
		return s, nil
	default:
		return "", fmt.Errorf("unknown background strategy %q (want neutral or primary)", name)
	}
}

// Mapper turns anchors into a Set. The zero value maps into sRGB under the
// Lightness contrast model.
type Mapper struct {
	Gamut    oklch.Gamut
	Enforcer contrast.Enforcer
}

// NewMapper returns a mapper for the given gamut and contrast model.
func NewMapper(g oklch.Gamut, m contrast.Model) Mapper {
	return Mapper{Gamut: g, Enforcer: contrast.NewEnforcer(m)}
}

type surfaces struct {
	background, card, popover, muted, border, input oklch.Color
}

type seed struct {
	light, dark, minChroma float64
}

var (
	textSeed   = seed{light: 0.92, dark: 0.16, minChroma: 0.01}
	filledSeed = seed{light: 0.94, dark: 0.18, minChroma: 0.008}
)

// Map derives every token for one mode.
func (m Mapper) Map(a harmony.Anchors, mode Mode, strategy BackgroundStrategy) (Set, error) {
	var dark bool
	switch mode {
	case Light:
	case Dark:
		dark = true
	default:
		return Set{}, fmt.Errorf("unknown mode %q", mode)
	}

	primaryAnchor := a.Primary.Clamped()

	var s surfaces
	if strategy == PrimaryTinted {
		s = primarySurfaces(primaryAnchor, dark)
	} else {
		s = neutralSurfaces(primaryAnchor, dark)
	}
	s = surfaces{
		background: m.clamp(s.background),
		card:       m.clamp(s.card),
		popover:    m.clamp(s.popover),
		muted:      m.clamp(s.muted),
		border:     m.clamp(s.border),
		input:      m.clamp(s.input),
	}

	primary, secondary, accent, destructive := primaryAnchor, a.Secondary, a.Accent, a.Destructive
	if dark {
		primary.L = math.Max(0.3, primary.L-0.1)
		secondary = oklch.AdjustLightness(secondary, -0.15)
		accent = oklch.AdjustLightness(accent, -0.15)
		destructive = oklch.AdjustLightness(destructive, -0.1)
	}
	primary = m.clamp(primary)
	secondary = m.clamp(secondary)
	accent = m.clamp(accent)
	destructive = m.clamp(destructive)

	var b Builder
	b.Set(Background, s.background).
		Set(Foreground, m.foreground(s.background, textSeed)).
		Set(Card, s.card).
		Set(CardForeground, m.foreground(s.card, textSeed)).
		Set(Popover, s.popover).
		Set(PopoverForeground, m.foreground(s.popover, textSeed)).
		Set(Primary, primary).
		Set(PrimaryForeground, m.foreground(primary, filledSeed)).
		Set(Secondary, secondary).
		Set(SecondaryForeground, m.foreground(secondary, textSeed)).
		Set(Muted, s.muted).
		Set(MutedForeground, m.foreground(s.muted, textSeed)).
		Set(Accent, accent).
		Set(AccentForeground, m.foreground(accent, textSeed)).
		Set(Destructive, destructive).
		Set(DestructiveForeground, m.foreground(destructive, filledSeed)).
		Set(Border, s.border).
		Set(Input, s.input).
		Set(Ring, m.clamp(ring(primaryAnchor, dark)))

	for i, c := range charts(primaryAnchor, dark) {
		b.Set(Chart1+Token(i), m.clamp(c))
	}

	m.sidebar(&b, primaryAnchor, dark)

	return b.Build()
}

func (m Mapper) clamp(c oklch.Color) oklch.Color {
	gamut := m.Gamut
	if gamut == "" {
		gamut = oklch.SRGB
	}
	return oklch.Clamp(c, gamut)
}

// foreground seeds a text color on the side of bg that can reach the larger
// ratio, then runs the enforcer. Only the foreground is kept. A tinted result
// that misses AA is replaced by an achromatic one when that scores higher.
func (m Mapper) foreground(bg oklch.Color, sd seed) oklch.Color {
	model := m.Enforcer.ModelOrDefault()

	white := oklch.Color{L: 1, H: bg.H}
	black := oklch.Color{L: 0, H: bg.H}
	l := sd.dark
	if contrast.Ratio(model, white, bg) >= contrast.Ratio(model, black, bg) {
		l = sd.light
	}

	enforcer := m.Enforcer.WithTarget(contrast.ThresholdAA)
	fg := m.clamp(oklch.Color{
		L: l,
		C: math.Max(sd.minChroma, bg.C*0.25),
		H: bg.H,
	})
	out := m.clamp(enforcer.Ensure(fg, bg).Foreground)
	if contrast.Ratio(model, out, bg) >= contrast.ThresholdAA {
		return out
	}

	// A tinted seed clips short of white or black in gamut; retry achromatic.
	gray := m.clamp(enforcer.Ensure(oklch.Color{L: l, H: bg.H}, bg).Foreground)
	if contrast.Ratio(model, gray, bg) > contrast.Ratio(model, out, bg) {
		return gray
	}
	return out
}

func neutralSurfaces(p oklch.Color, dark bool) surfaces {
	low := math.Min(0.01, p.C*0.1)
	at := func(l, cScale float64) oklch.Color {
		return oklch.New(l, low*cScale, p.H)
	}
	if dark {
		return surfaces{
			background: at(0.08, 1),
			card:       at(0.14, 1),
			popover:    at(0.165, 1),
			muted:      at(0.22, 1.5),
			border:     at(0.32, 2),
			input:      at(0.36, 2),
		}
	}
	return surfaces{
		background: at(0.995, 0.4),
		card:       at(0.988, 0.5),
		popover:    at(0.984, 0.6),
		muted:      at(0.955, 0.8),
		border:     at(0.9, 1.5),
		input:      at(0.915, 1.7),
	}
}

func primarySurfaces(p oklch.Color, dark bool) surfaces {
	base := oklch.New(p.L, math.Max(0.002, p.C*0.4), p.H)

	if !dark {
		bg := oklch.New(math.Min(0.995, base.L+0.22), base.C*0.75, base.H)
		muted := oklch.AdjustLightness(bg, -0.1)
		muted.C = math.Max(0.002, bg.C*0.55)
		return surfaces{
			background: bg,
			card:       oklch.AdjustLightness(bg, -0.01),
			popover:    oklch.AdjustLightness(bg, -0.015),
			muted:      muted.Clamped(),
			border:     oklch.New(bg.L-0.16, bg.C*0.3, bg.H),
			input:      oklch.New(bg.L-0.12, bg.C*0.35, bg.H),
		}
	}

	bg := oklch.New(math.Max(0.06, base.L-0.32), base.C*1.1, base.H)
	muted := oklch.AdjustLightness(bg, 0.14)
	muted.C = bg.C * 0.8
	return surfaces{
		background: bg,
		card:       oklch.AdjustLightness(bg, 0.05),
		popover:    oklch.AdjustLightness(bg, 0.07),
		muted:      muted.Clamped(),
		border:     oklch.New(math.Min(0.7, bg.L+0.42), bg.C*0.3, bg.H),
		input:      oklch.New(math.Min(0.58, bg.L+0.32), bg.C*0.35, bg.H),
	}
}

func ring(p oklch.Color, dark bool) oklch.Color {
	if dark {
		return oklch.New(0.38, p.C*0.5, p.H)
	}
	return oklch.New(0.702, p.C*0.3, p.H)
}

var (
	chartHueSteps     = [5]float64{0, 60, 120, 180, 240}
	chartLOffsetDark  = [5]float64{0, 0.15, 0.22, 0.08, 0.12}
	chartLOffsetLight = [5]float64{0.35, 0.1, 0.02, -0.02, -0.1}
	chartCMultiplier  = [5]float64{1, 0.85, 0.95, 1.1, 1}
)

func charts(p oklch.Color, dark bool) [5]oklch.Color {
	baseL := clamp(p.L-0.1, 0.35, 0.8)
	baseC := clamp(p.C*0.6+0.08, 0.1, 0.3)
	offsets := chartLOffsetLight
	if dark {
		baseL = clamp(p.L+0.15, 0.4, 0.75)
		baseC = clamp(p.C*0.8+0.1, 0.15, 0.28)
		offsets = chartLOffsetDark
	}

	var out [5]oklch.Color
	for i := range out {
		out[i] = oklch.New(
			clamp(baseL+offsets[i], 0.3, 0.85),
			clamp(baseC*chartCMultiplier[i], 0.08, 0.32),
			p.H+chartHueSteps[i],
		)
	}
	return out
}

func (m Mapper) sidebar(b *Builder, p oklch.Color, dark bool) {
	var bg, primary, accent, border oklch.Color
	if dark {
		bg = oklch.New(0.21, math.Min(0.01, p.C*0.2), p.H)
		primary = oklch.AdjustLightness(p, -0.1)
		accent = oklch.New(0.274, math.Min(0.01, p.C*0.3), p.H)
		border = oklch.New(math.Min(0.45, bg.L+0.18), math.Min(0.015, p.C*0.25), p.H)
	} else {
		bg = oklch.New(0.985, math.Min(0.003, p.C*0.1), p.H)
		primary = p
		accent = oklch.New(0.967, math.Min(0.007, p.C*0.2), p.H)
		border = oklch.New(0.929, math.Min(0.013, p.C*0.3), p.H)
	}
	bg, primary, accent, border = m.clamp(bg), m.clamp(primary), m.clamp(accent), m.clamp(border)

	b.Set(Sidebar, bg).
		Set(SidebarForeground, m.foreground(bg, textSeed)).
		Set(SidebarPrimary, primary).
		Set(SidebarPrimaryForeground, m.foreground(primary, filledSeed)).
		Set(SidebarAccent, accent).
		Set(SidebarAccentForeground, m.foreground(accent, textSeed)).
		Set(SidebarBorder, border).
		Set(SidebarRing, m.clamp(ring(p, dark)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
