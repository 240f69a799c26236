// SPDX-License-Identifier: MIT
package contrast

import (
	"github.com/thatcatcamp/huekit/internal/oklch"
)

const (
	DefaultMaxIterations = 100

	foregroundStep = 0.02
	backgroundStep = 0.01
	extremeStep    = 0.05
)

// Enforcer searches for a foreground that meets TargetRatio against a
// background. Zero fields take defaults (Lightness, 4.5, 100).
type Enforcer struct {
	Model         Model
	TargetRatio   float64
	MaxIterations int
}

// Enforcement is the best pair found. Success is false when the iteration cap
// ran out first; that is a reportable outcome, not an error.
type Enforcement struct {
	Foreground oklch.Color `json:"foreground"`
	Background oklch.Color `json:"background"`
	Success    bool        `json:"success"`
	Iterations int         `json:"iterations"`
}

// NewEnforcer returns an enforcer at the AA target.
func NewEnforcer(m Model) Enforcer {
	return Enforcer{Model: m, TargetRatio: ThresholdAA, MaxIterations: DefaultMaxIterations}
}

// WithTarget returns a copy of e aiming at ratio.
func (e Enforcer) WithTarget(ratio float64) Enforcer {
	e.TargetRatio = ratio
	return e
}

// ModelOrDefault returns the configured model, or Lightness.
func (e Enforcer) ModelOrDefault() Model {
	if e.Model == nil {
		return Lightness
	}
	return e.Model
}

// Ensure runs the three-phase search:
//
//   - [0, 60%) of the budget: move foreground L by 0.02 away from the
//     background's luminance.
//   - [60%, 90%): same, and on every third iteration move background L by
//     0.01 the other way.
//   - [90%, 100%): move foreground L by 0.05.
//
// The direction at each step depends only on the current luminance order, so
// identical inputs always take identical paths.
func (e Enforcer) Ensure(fg, bg oklch.Color) Enforcement {
	m := e.ModelOrDefault()
	target := e.TargetRatio
	if target <= 0 {
		target = ThresholdAA
	}
	maxIter := e.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	phase1 := maxIter * 6 / 10
	phase2 := maxIter * 9 / 10

	fg, bg = fg.Clamped(), bg.Clamped()

	for i := 0; i < maxIter; i++ {
		if Ratio(m, fg, bg) >= target {
			return Enforcement{Foreground: fg, Background: bg, Success: true, Iterations: i}
		}

		lighter := m.Luminance(fg) >= m.Luminance(bg)

		step := foregroundStep
		if i >= phase2 {
			step = extremeStep
		}
		fg = nudge(fg, step, lighter)

		if i >= phase1 && i < phase2 && i%3 == 0 {
			bg = nudge(bg, backgroundStep, !lighter)
		}
	}

	return Enforcement{
		Foreground: fg,
		Background: bg,
		Success:    Ratio(m, fg, bg) >= target,
		Iterations: maxIter,
	}
}

func nudge(c oklch.Color, step float64, up bool) oklch.Color {
	if up {
		return oklch.AdjustLightness(c, step)
	}
	return oklch.AdjustLightness(c, -step)
}
