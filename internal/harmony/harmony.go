// SPDX-License-Identifier: MIT

// Package harmony derives palette anchors from a primary color using
// color-wheel relationships.
package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

// ErrUnknownHarmony is returned by Parse for names outside the closed set.
var ErrUnknownHarmony = errors.New("unknown harmony")

// Type names a harmony rule.
type Type string

const (
	Monochromatic      Type = "monochromatic"
	Complementary      Type = "complementary"
	SplitComplementary Type = "split-complementary"
	Triadic            Type = "triadic"
	Tetradic           Type = "tetradic"
	Analogous          Type = "analogous"
	Square             Type = "square"

	RaveClub         Type = "rave-club"
	ExtraTerrestrial Type = "extra-terrestrial"
	PartyBus         Type = "party-bus"
	SoftPastels      Type = "soft-pastels"
)

// Default is used when no harmony is requested.
const Default = Monochromatic

// Info describes a harmony for pickers and listings.
type Info struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Decorative  bool   `json:"decorative"`
}

var infos = []Info{
	{Monochromatic, "Monochromatic", "Single hue with varying lightness and chroma", false},
	{Complementary, "Complementary", "Opposite colors on the color wheel", false},
	{SplitComplementary, "Split Complementary", "Base color plus two adjacent to its complement", false},
	{Triadic, "Triadic", "Three evenly spaced colors", false},
	{Tetradic, "Tetradic", "Four colors forming a rectangle", false},
	{Analogous, "Analogous", "Adjacent colors on the color wheel", false},
	{Square, "Square", "Four colors evenly spaced around the color wheel", false},
	{RaveClub, "Rave Club", "High chroma, vibrant neon colors", true},
	{ExtraTerrestrial, "Extra Terrestrial", "Cool, desaturated colors with blue-green tones", true},
	{PartyBus, "Party Bus", "Warm, energetic colors with high saturation", true},
	{SoftPastels, "Soft Pastels", "Low chroma, high lightness colors", true},
}

// All lists every harmony in display order.
func All() []Info {
	out := make([]Info, len(infos))
	copy(out, infos)
	return out
}

// Parse validates a harmony name. An empty name selects Default.
func Parse(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if t == "" {
		return Default, nil
	}
	if _, ok := rules[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHarmony, name)
	}
	return t, nil
}

// Describe returns the Info for t.
func (t Type) Describe() (Info, bool) {
	for _, info := range infos {
		if info.Type == t {
			return info, true
		}
	}
	return Info{}, false
}

func (t Type) String() string { return string(t) }

// Derived is what a rule produces from a primary color alone.
type Derived struct {
	Primary   oklch.Color
	Secondary oklch.Color
	Accent    oklch.Color
}

// Rule derives secondary and accent from a primary. Decorative rules may
// also restate the primary.
type Rule func(primary oklch.Color) Derived

var rules = map[Type]Rule{
	Monochromatic: func(p oklch.Color) Derived {
		return Derived{
			Primary:   p,
			Secondary: oklch.AdjustLightness(p, 0.15),
			Accent:    oklch.AdjustLightness(p, -0.1),
		}
	},
	Complementary: func(p oklch.Color) Derived {
		complement := oklch.AdjustHue(p, 180)
		return Derived{
			Primary:   p,
			Secondary: oklch.AdjustLightness(complement, 0.1),
			Accent:    complement,
		}
	},
	SplitComplementary: func(p oklch.Color) Derived {
		return Derived{
			Primary:   p,
			Secondary: oklch.AdjustLightness(oklch.AdjustHue(p, 210), 0.05),
			Accent:    oklch.AdjustHue(p, 150),
		}
	},
	Triadic: func(p oklch.Color) Derived {
		return Derived{
			Primary:   p,
			Secondary: oklch.AdjustLightness(oklch.AdjustHue(p, 120), 0.1),
			Accent:    oklch.AdjustHue(p, 240),
		}
	},
	Tetradic: quarterTurns,
	Square:   quarterTurns,
	Analogous: func(p oklch.Color) Derived {
		return Derived{
			Primary:   p,
			Secondary: oklch.AdjustLightness(oklch.AdjustHue(p, 30), 0.05),
			Accent:    oklch.AdjustHue(p, -30),
		}
	},

	RaveClub: func(p oklch.Color) Derived {
		boosted := oklch.AdjustChroma(p, 0.15)
		neon := oklch.AdjustLightness(boosted, -0.1)
		return Derived{
			Primary:   boosted,
			Secondary: oklch.AdjustHue(neon, 60),
			Accent:    neon,
		}
	},
	ExtraTerrestrial: func(p oklch.Color) Derived {
		desat := oklch.AdjustChroma(oklch.AdjustHue(p, -30), -0.1)
		return Derived{
			Primary:   desat,
			Secondary: oklch.AdjustLightness(desat, 0.1),
			Accent:    oklch.AdjustHue(desat, -60),
		}
	},
	PartyBus: func(p oklch.Color) Derived {
		sat := oklch.AdjustChroma(oklch.AdjustHue(p, 20), 0.1)
		return Derived{
			Primary:   sat,
			Secondary: oklch.AdjustLightness(sat, 0.15),
			Accent:    oklch.AdjustHue(sat, -40),
		}
	},
	SoftPastels: func(p oklch.Color) Derived {
		soft := oklch.AdjustChroma(oklch.AdjustLightness(p, 0.2), -0.15)
		return Derived{
			Primary:   soft,
			Secondary: oklch.AdjustLightness(soft, 0.1),
			Accent:    oklch.AdjustLightness(soft, -0.05),
		}
	},
}

func quarterTurns(p oklch.Color) Derived {
	return Derived{
		Primary:   p,
		Secondary: oklch.AdjustLightness(oklch.AdjustHue(p, 90), 0.1),
		Accent:    oklch.AdjustHue(p, 180),
	}
}

// RuleFor returns the rule for t, falling back to monochromatic for values
// outside the closed set.
func RuleFor(t Type) Rule {
	if r, ok := rules[t]; ok {
		return r
	}
	return rules[Monochromatic]
}
