// SPDX-License-Identifier: MIT
package tokens

import (
	"github.com/thatcatcamp/huekit/internal/contrast"
)

// Pair is a foreground token that must stay legible on a background token.
type Pair struct {
	Foreground Token   `json:"foreground"`
	Background Token   `json:"background"`
	Target     float64 `json:"target"`
}

var pairs = [...]Pair{
	{Foreground, Background, contrast.ThresholdAA},
	{CardForeground, Card, contrast.ThresholdAA},
	{PopoverForeground, Popover, contrast.ThresholdAA},
	{PrimaryForeground, Primary, contrast.ThresholdAA},
	{SecondaryForeground, Secondary, contrast.ThresholdAA},
	{MutedForeground, Muted, contrast.ThresholdAA},
	{AccentForeground, Accent, contrast.ThresholdAA},
	{DestructiveForeground, Destructive, contrast.ThresholdAA},
	{SidebarForeground, Sidebar, contrast.ThresholdAA},
	{SidebarPrimaryForeground, SidebarPrimary, contrast.ThresholdAA},
	{SidebarAccentForeground, SidebarAccent, contrast.ThresholdAA},
}

// Pairs returns the fixed list of checked pairs.
func Pairs() []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs[:])
	return out
}

// Reporter receives pairs the enforcer could not bring up to target.
type Reporter interface {
	ContrastUnmet(p Pair, res contrast.Enforcement)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(p Pair, res contrast.Enforcement)

func (f ReporterFunc) ContrastUnmet(p Pair, res contrast.Enforcement) { f(p, res) }

// NopReporter discards reports.
type NopReporter struct{}

func (NopReporter) ContrastUnmet(Pair, contrast.Enforcement) {}

// Enforce runs the enforcer over every pair and returns a new Set whose
// foregrounds are the enforced ones. Backgrounds are never written back.
func Enforce(s Set, e contrast.Enforcer, r Reporter) Set {
	if r == nil {
		r = NopReporter{}
	}
	out := s
	for _, p := range pairs {
		res := e.WithTarget(p.Target).Ensure(out.Get(p.Foreground), out.Get(p.Background))
		if !res.Success {
			r.ContrastUnmet(p, res)
		}
		out = out.With(p.Foreground, res.Foreground)
	}
	return out
}
