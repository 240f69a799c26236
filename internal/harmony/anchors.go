// SPDX-License-Identifier: MIT
package harmony

import (
	"math"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

// Anchors are the four base colors every token is derived from.
type Anchors struct {
	Primary     oklch.Color `json:"primary"`
	Secondary   oklch.Color `json:"secondary"`
	Accent      oklch.Color `json:"accent"`
	Destructive oklch.Color `json:"destructive"`
}

// Input is a primary color with an optional explicit secondary.
type Input struct {
	Primary   oklch.Color
	Secondary *oklch.Color
}

// Single is an input with only a primary color.
func Single(primary oklch.Color) Input {
	return Input{Primary: primary}
}

// Dual is an input with an explicit secondary color.
func Dual(primary, secondary oklch.Color) Input {
	return Input{Primary: primary, Secondary: &secondary}
}

// IsDual reports whether the input carries a secondary color.
func (in Input) IsDual() bool { return in.Secondary != nil }

// GenerateAnchors derives anchors from in. A dual input uses its secondary
// verbatim and ignores t; the accent sits between primary and secondary.
func GenerateAnchors(in Input, t Type) Anchors {
	primary := in.Primary.Clamped()

	if in.IsDual() {
		secondary := in.Secondary.Clamped()
		return Anchors{
			Primary:     primary,
			Secondary:   secondary,
			Accent:      accentBetween(primary, secondary),
			Destructive: GenerateDestructive(primary),
		}
	}

	d := RuleFor(t)(primary)
	return Anchors{
		Primary:     d.Primary.Clamped(),
		Secondary:   d.Secondary.Clamped(),
		Accent:      d.Accent.Clamped(),
		Destructive: GenerateDestructive(primary),
	}
}

func accentBetween(a, b oklch.Color) oklch.Color {
	return oklch.New(
		(a.L+b.L)/2,
		math.Max(a.C, b.C)*0.8,
		oklch.HueMidpoint(a.H, b.H),
	)
}

const (
	destructiveHue     = 25.0
	destructiveMagenta = 340.0
	destructiveRed     = 15.0
)

// GenerateDestructive builds a red error color that stays distinguishable
// from the primary. Red-ish primaries push it to magenta, orange-ish
// primaries to pure red.
func GenerateDestructive(primary oklch.Color) oklch.Color {
	p := primary.Clamped()

	hue := destructiveHue
	switch {
	case p.H < 40:
		hue = destructiveMagenta
	case p.H < 70:
		hue = destructiveRed
	}

	l := clamp(p.L*0.8+0.2, 0.4, 0.72)
	c := clamp(p.C+0.12, 0.18, 0.3)
	return oklch.New(l, c, hue)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
