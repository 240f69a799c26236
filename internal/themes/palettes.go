// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/huekit/internal/harmony"

// Preset is a named input tuple users can start from
type Preset struct {
	Name      string       `json:"name"`
	Primary   string       `json:"primary"`
	Secondary string       `json:"secondary,omitempty"`
	Harmony   harmony.Type `json:"harmony"`
}

// Request builds a generation request from the preset
func (p *Preset) Request(opts Options) Request {
	return Request{
		Primary:   p.Primary,
		Secondary: p.Secondary,
		Harmony:   p.Harmony,
		Options:   opts,
	}
}

var presetOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
	"violet-split", "sunset-triadic", "ocean-analogous", "neon",
}

// GetPreset returns a preset by name, or nil
func GetPreset(name string) *Preset {
	presets := map[string]*Preset{
		"slate": {
			Name:      "slate",
			Primary:   "#64748b",
			Secondary: "#0f172a",
			Harmony:   harmony.Monochromatic,
		},
		"indigo": {
			Name:      "indigo",
			Primary:   "#4f46e5",
			Secondary: "#f97316",
			Harmony:   harmony.Complementary,
		},
		"rose": {
			Name:      "rose",
			Primary:   "#e11d48",
			Secondary: "#64748b",
			Harmony:   harmony.Monochromatic,
		},
		"emerald": {
			Name:      "emerald",
			Primary:   "#059669",
			Secondary: "#f59e0b",
			Harmony:   harmony.Complementary,
		},
		"navy": {
			Name:      "navy",
			Primary:   "#000080",
			Secondary: "#fbbf24",
			Harmony:   harmony.Complementary,
		},
		"purple": {
			Name:      "purple",
			Primary:   "#a855f7",
			Secondary: "#ec4899",
			Harmony:   harmony.Analogous,
		},
		"teal": {
			Name:      "teal",
			Primary:   "#14b8a6",
			Secondary: "#f87171",
			Harmony:   harmony.Complementary,
		},
		"amber": {
			Name:      "amber",
			Primary:   "#f59e0b",
			Secondary: "#6366f1",
			Harmony:   harmony.Complementary,
		},
		"rose-mono": {
			Name:      "rose-mono",
			Primary:   "#e11d48",
			Secondary: "#c41e3a",
			Harmony:   harmony.Monochromatic,
		},
		"green-mono": {
			Name:      "green-mono",
			Primary:   "#22c55e",
			Secondary: "#16a34a",
			Harmony:   harmony.Monochromatic,
		},
		"blue-mono": {
			Name:      "blue-mono",
			Primary:   "#3b82f6",
			Secondary: "#1e40af",
			Harmony:   harmony.Monochromatic,
		},
		"neutral": {
			Name:      "neutral",
			Primary:   "#6b7280",
			Secondary: "#4b5563",
			Harmony:   harmony.Monochromatic,
		},
		// Single-color presets let the harmony rule pick the secondary.
		"violet-split": {
			Name:    "violet-split",
			Primary: "#8b5cf6",
			Harmony: harmony.SplitComplementary,
		},
		"sunset-triadic": {
			Name:    "sunset-triadic",
			Primary: "#f97316",
			Harmony: harmony.Triadic,
		},
		"ocean-analogous": {
			Name:    "ocean-analogous",
			Primary: "#0ea5e9",
			Harmony: harmony.Analogous,
		},
		"neon": {
			Name:    "neon",
			Primary: "#d946ef",
			Harmony: harmony.RaveClub,
		},
	}

	return presets[name]
}

// ListPresets returns all presets in display order
func ListPresets() []*Preset {
	var presets []*Preset
	for _, name := range presetOrder {
		if p := GetPreset(name); p != nil {
			presets = append(presets, p)
		}
	}
	return presets
}
