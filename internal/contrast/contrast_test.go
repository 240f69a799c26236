// SPDX-License-Identifier: MIT
package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

var (
	white = oklch.Color{L: 1}
	black = oklch.Color{L: 0}
)

func TestRatioExtremes(t *testing.T) {
	for _, m := range []Model{Lightness, WCAG} {
		t.Run(m.Name(), func(t *testing.T) {
			assert.InDelta(t, 21, Ratio(m, white, black), 0.05)
			assert.InDelta(t, 21, Ratio(m, black, white), 0.05)
			assert.InDelta(t, 1, Ratio(m, white, white), 1e-9)
		})
	}
}

func TestLightnessRatioUsesL(t *testing.T) {
	fg := oklch.Color{L: 0.5, C: 0.2, H: 40}
	bg := oklch.Color{L: 0, C: 0, H: 0}
	assert.InDelta(t, 11, Ratio(Lightness, fg, bg), 1e-9)
}

func TestCheckFlags(t *testing.T) {
	r := Check(Lightness, oklch.Color{L: 0.2}, oklch.Color{L: 0.95})
	assert.InDelta(t, 4.0, r.Ratio, 1e-9)
	assert.False(t, r.AA)
	assert.False(t, r.AAA)
	assert.InDelta(t, 75, r.APCA, 1e-9)

	r = Check(Lightness, oklch.Color{L: 0.1}, oklch.Color{L: 0.95})
	assert.True(t, r.AA)
	assert.False(t, r.AAA)

	r = Check(Lightness, black, white)
	assert.True(t, r.AA)
	assert.True(t, r.AAA)
}

func TestAPCA(t *testing.T) {
	assert.InDelta(t, 106.04, APCA(black, white), 0.5)
	assert.InDelta(t, -107.88, APCA(white, black), 0.5)
	assert.Equal(t, 0.0, APCA(white, white))

	r := Check(WCAG, black, white)
	assert.InDelta(t, 106.04, r.APCA, 0.5)
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("")
	require.NoError(t, err)
	assert.Equal(t, "oklch", m.Name())

	m, err = ParseModel("WCAG")
	require.NoError(t, err)
	assert.Equal(t, "wcag", m.Name())

	_, err = ParseModel("delta-e")
	assert.Error(t, err)
}

func TestEnsureAlreadyPassing(t *testing.T) {
	res := NewEnforcer(Lightness).Ensure(black, white)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, black, res.Foreground)
	assert.Equal(t, white, res.Background)
}

func TestEnsureLightensLighterForeground(t *testing.T) {
	fg := oklch.Color{L: 0.6, C: 0.05, H: 250}
	bg := oklch.Color{L: 0.1, C: 0.01, H: 250}

	res := NewEnforcer(Lightness).Ensure(fg, bg)
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Iterations)
	assert.InDelta(t, 0.64, res.Foreground.L, 1e-9)
	assert.Equal(t, bg, res.Background)
	assert.Equal(t, fg.H, res.Foreground.H)
	assert.Equal(t, fg.C, res.Foreground.C)
}

func TestEnsureDarkensDarkerForeground(t *testing.T) {
	fg := oklch.Color{L: 0.5}
	bg := oklch.Color{L: 0.9}

	res := NewEnforcer(Lightness).Ensure(fg, bg)
	require.True(t, res.Success)
	assert.Equal(t, 17, res.Iterations)
	assert.GreaterOrEqual(t, Ratio(Lightness, res.Foreground, res.Background), ThresholdAA)
}

func TestEnsureExhaustsWithoutError(t *testing.T) {
	fg := oklch.Color{L: 0.5}
	bg := oklch.Color{L: 0.5}

	res := NewEnforcer(Lightness).WithTarget(21).Ensure(fg, bg)
	assert.False(t, res.Success)
	assert.Equal(t, DefaultMaxIterations, res.Iterations)
	assert.Equal(t, 1.0, res.Foreground.L)
	// Phase two darkens the background on iterations 60, 63, ..., 87.
	assert.InDelta(t, 0.4, res.Background.L, 1e-9)
}

func TestEnsureSmallBudgetPhases(t *testing.T) {
	e := Enforcer{Model: Lightness, TargetRatio: 21, MaxIterations: 10}
	res := e.Ensure(oklch.Color{L: 0.3}, oklch.Color{L: 0.5})

	// 6 steps of 0.02, 3 of 0.02 in phase two, 1 of 0.05 in phase three.
	assert.InDelta(t, 0.3-9*0.02-0.05, res.Foreground.L, 1e-9)
	// Phase two spans iterations 6..8; only 6 is a multiple of three.
	assert.InDelta(t, 0.51, res.Background.L, 1e-9)
	assert.False(t, res.Success)
}

func TestEnsureDeterministic(t *testing.T) {
	fg := oklch.Color{L: 0.45, C: 0.1, H: 120}
	bg := oklch.Color{L: 0.55, C: 0.12, H: 300}

	for _, m := range []Model{Lightness, WCAG} {
		e := NewEnforcer(m)
		assert.Equal(t, e.Ensure(fg, bg), e.Ensure(fg, bg))
	}
}

func TestEnsureZeroValueEnforcer(t *testing.T) {
	var e Enforcer
	res := e.Ensure(oklch.Color{L: 0.4}, oklch.Color{L: 0.95})
	assert.True(t, res.Success)
	assert.GreaterOrEqual(t, Ratio(Lightness, res.Foreground, res.Background), ThresholdAA)
}

func TestEnsureWCAGModel(t *testing.T) {
	fg := oklch.Color{L: 0.7, C: 0.02, H: 260}
	bg := oklch.Color{L: 0.98, C: 0.003, H: 260}

	res := NewEnforcer(WCAG).Ensure(fg, bg)
	require.True(t, res.Success)
	assert.Less(t, res.Foreground.L, fg.L)
	assert.GreaterOrEqual(t, Ratio(WCAG, res.Foreground, res.Background), ThresholdAA)
}
