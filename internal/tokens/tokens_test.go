// SPDX-License-Identifier: MIT
package tokens

import (
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
)

func filled(c oklch.Color) Set {
	var b Builder
	for _, t := range All() {
		b.Set(t, c)
	}
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func TestTokenNames(t *testing.T) {
	all := All()
	require.Len(t, all, 32)
	assert.Equal(t, "background", all[0].String())
	assert.Equal(t, "sidebar-ring", all[31].String())
	assert.Equal(t, "chart-3", Chart3.String())

	for _, tok := range all {
		got, err := ParseToken(tok.String())
		require.NoError(t, err)
		assert.Equal(t, tok, got)
	}

	_, err := ParseToken("chart-6")
	assert.Error(t, err)
	assert.False(t, Token(99).Valid())
}

func TestBuilderTotality(t *testing.T) {
	var b Builder
	b.Set(Background, oklch.Color{L: 1}).Set(Foreground, oklch.Color{})

	_, err := b.Build()
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "card")
	assert.Len(t, b.Missing(), 30)

	for _, tok := range All() {
		b.Set(tok, oklch.Color{L: 0.5})
	}
	_, err = b.Build()
	assert.NoError(t, err)
}

func TestSetIsValue(t *testing.T) {
	s := filled(oklch.Color{L: 0.5})
	s2 := s.With(Primary, oklch.Color{L: 0.9})

	assert.Equal(t, 0.5, s.Get(Primary).L)
	assert.Equal(t, 0.9, s2.Get(Primary).L)

	var seen []Token
	s.Each(func(tok Token, _ oklch.Color) { seen = append(seen, tok) })
	assert.Equal(t, All(), seen)
}

func TestSetJSON(t *testing.T) {
	s := filled(oklch.Color{L: 0.5, C: 0.1, H: 200})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"background":"oklch(0.5 0.1 200)","foreground":`))

	var back Set
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)

	err = json.Unmarshal([]byte(`{"background":"oklch(0.5 0.1 200)"}`), &back)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestParseBackgroundStrategy(t *testing.T) {
	s, err := ParseBackgroundStrategy("")
	require.NoError(t, err)
	assert.Equal(t, Neutral, s)

	s, err = ParseBackgroundStrategy("Primary")
	require.NoError(t, err)
	assert.Equal(t, PrimaryTinted, s)

	_, err = ParseBackgroundStrategy("gradient")
	assert.Error(t, err)
}

func anchorsFor(t *testing.T, hex string, typ harmony.Type) harmony.Anchors {
	t.Helper()
	p, err := oklch.Parse(hex)
	require.NoError(t, err)
	return harmony.GenerateAnchors(harmony.Single(p), typ)
}

func TestMapNeutralLadder(t *testing.T) {
	a := anchorsFor(t, "#3b82f6", harmony.Monochromatic)
	var m Mapper

	light, err := m.Map(a, Light, Neutral)
	require.NoError(t, err)
	assert.InDelta(t, 0.995, light.Get(Background).L, 1e-9)
	assert.InDelta(t, 0.9, light.Get(Border).L, 1e-9)
	assert.LessOrEqual(t, light.Get(Background).C, 0.004+1e-9)
	assert.Less(t, light.Get(Foreground).L, 0.5)

	dark, err := m.Map(a, Dark, Neutral)
	require.NoError(t, err)
	assert.InDelta(t, 0.08, dark.Get(Background).L, 1e-9)
	assert.InDelta(t, 0.36, dark.Get(Input).L, 1e-9)
	assert.Greater(t, dark.Get(Foreground).L, 0.5)
	assert.InDelta(t, a.Primary.L-0.1, dark.Get(Primary).L, 1e-9)
	assert.InDelta(t, 0.38, dark.Get(Ring).L, 1e-9)
	assert.InDelta(t, 0.21, dark.Get(Sidebar).L, 1e-9)
}

func TestMapPrimaryTinted(t *testing.T) {
	a := anchorsFor(t, "#059669", harmony.Analogous)
	var m Mapper

	light, err := m.Map(a, Light, PrimaryTinted)
	require.NoError(t, err)
	assert.InDelta(t, a.Primary.L+0.22, light.Get(Background).L, 1e-9)
	assert.InDelta(t, light.Get(Background).L-0.01, light.Get(Card).L, 1e-9)
	assert.InDelta(t, a.Primary.H, light.Get(Background).H, 1e-9)

	dark, err := m.Map(a, Dark, PrimaryTinted)
	require.NoError(t, err)
	assert.InDelta(t, a.Primary.L-0.32, dark.Get(Background).L, 1e-9)
}

func TestMapDarkPrimaryFloor(t *testing.T) {
	a := harmony.GenerateAnchors(harmony.Single(oklch.Color{L: 0.2, C: 0.1, H: 30}), harmony.Monochromatic)
	dark, err := Mapper{}.Map(a, Dark, Neutral)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, dark.Get(Primary).L, 1e-9)
}

func TestMapCharts(t *testing.T) {
	a := harmony.GenerateAnchors(harmony.Single(oklch.Color{L: 0.6, C: 0.2, H: 300}), harmony.Monochromatic)
	light, err := Mapper{}.Map(a, Light, Neutral)
	require.NoError(t, err)

	hues := []float64{300, 0, 60, 120, 180}
	for i, tok := range []Token{Chart1, Chart2, Chart3, Chart4, Chart5} {
		c := light.Get(tok)
		assert.InDelta(t, hues[i], c.H, 1e-9, tok.String())
		assert.GreaterOrEqual(t, c.L, 0.3)
		assert.LessOrEqual(t, c.L, 0.85)
		assert.GreaterOrEqual(t, c.C, 0.08)
	}
	assert.InDelta(t, 0.85, light.Get(Chart1).L, 1e-9)
}

func TestMapUnknownMode(t *testing.T) {
	_, err := Mapper{}.Map(harmony.Anchors{}, Mode("sepia"), Neutral)
	assert.Error(t, err)
}

func TestMapBlackPrimaryDarkForeground(t *testing.T) {
	a := anchorsFor(t, "#000000", harmony.Monochromatic)
	for _, strategy := range []BackgroundStrategy{Neutral, PrimaryTinted} {
		dark, err := Mapper{}.Map(a, Dark, strategy)
		require.NoError(t, err)
		fg := dark.Get(Foreground)
		assert.Greater(t, fg.L, 0.8)
		assert.True(t, contrast.Check(contrast.Lightness, fg, dark.Get(Background)).AA)
	}
}

func TestMapRespectsGamut(t *testing.T) {
	a := harmony.GenerateAnchors(harmony.Single(oklch.Color{L: 0.6, C: 0.4, H: 140}), harmony.RaveClub)
	for _, g := range []oklch.Gamut{oklch.SRGB, oklch.P3, oklch.Rec2020} {
		m := NewMapper(g, contrast.Lightness)
		for _, mode := range Modes {
			s, err := m.Map(a, mode, Neutral)
			require.NoError(t, err)
			s.Each(func(tok Token, c oklch.Color) {
				assert.LessOrEqual(t, c.C, g.ChromaMax(), "%s %s %s", g, mode, tok)
				assert.GreaterOrEqual(t, c.L, 0.0)
				assert.LessOrEqual(t, c.L, 1.0)
				assert.Less(t, c.H, 360.0)
			})
		}
	}
}

func TestMappedPairsConverge(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#808080", "#ff0000", "#8b5cf6", "#22c55e", "#fbbf24", "#000080"}
	for _, hex := range inputs {
		for _, info := range harmony.All() {
			a := anchorsFor(t, hex, info.Type)
			for _, strategy := range []BackgroundStrategy{Neutral, PrimaryTinted} {
				for _, mode := range Modes {
					s, err := Mapper{}.Map(a, mode, strategy)
					require.NoError(t, err)
					for _, p := range Pairs() {
						r := contrast.Ratio(contrast.Lightness, s.Get(p.Foreground), s.Get(p.Background))
						assert.GreaterOrEqual(t, r, p.Target, "%s %s %s %s %s", hex, info.Type, strategy, mode, p.Foreground)
					}
				}
			}
		}
	}
}

func TestPairs(t *testing.T) {
	ps := Pairs()
	require.Len(t, ps, 11)
	assert.Equal(t, Pair{Foreground, Background, 4.5}, ps[0])
	assert.Equal(t, SidebarAccentForeground, ps[10].Foreground)

	ps[0].Target = 1
	assert.Equal(t, 4.5, Pairs()[0].Target)
}

func TestEnforceWritesForegroundsOnly(t *testing.T) {
	s := filled(oklch.Color{L: 0.5})
	for _, p := range Pairs() {
		s = s.With(p.Background, oklch.Color{L: 0.95})
	}

	var reported []Pair
	out := Enforce(s, contrast.NewEnforcer(contrast.Lightness), ReporterFunc(func(p Pair, _ contrast.Enforcement) {
		reported = append(reported, p)
	}))

	assert.Empty(t, reported)
	for _, p := range Pairs() {
		assert.Equal(t, s.Get(p.Background), out.Get(p.Background))
		assert.GreaterOrEqual(t, contrast.Ratio(contrast.Lightness, out.Get(p.Foreground), out.Get(p.Background)), 4.5)
	}
	assert.Equal(t, 0.5, s.Get(Foreground).L, "input set must not change")
	assert.Equal(t, s.Get(Border), out.Get(Border))
}

func TestEnforceReportsUnmet(t *testing.T) {
	s := filled(oklch.Color{L: 0.5})
	e := contrast.Enforcer{Model: contrast.Lightness, MaxIterations: 1}

	var reported []Pair
	out := Enforce(s, e, ReporterFunc(func(p Pair, res contrast.Enforcement) {
		assert.False(t, res.Success)
		reported = append(reported, p)
	}))

	assert.Equal(t, Pairs(), reported)
	for _, p := range Pairs() {
		assert.Equal(t, 0.5, out.Get(p.Background).L)
	}

	assert.NotPanics(t, func() { Enforce(s, e, nil) })
}

func TestEnforceIsStableOnMappedSets(t *testing.T) {
	a := anchorsFor(t, "#e11d48", harmony.Triadic)
	s, err := Mapper{}.Map(a, Light, Neutral)
	require.NoError(t, err)
	assert.Equal(t, s, Enforce(s, contrast.NewEnforcer(contrast.Lightness), nil))
}

func TestMapWCAGFallsBackToAchromatic(t *testing.T) {
	m := NewMapper(oklch.SRGB, contrast.WCAG)
	primaries := []string{"#0000cc", "#3b82f6", "#ff0000", "#22c55e", "#facc15", "#7c3aed", "#000000", "#ffffff"}

	for _, p := range primaries {
		for _, info := range harmony.All() {
			a := anchorsFor(t, p, info.Type)
			for _, mode := range Modes {
				s, err := m.Map(a, mode, Neutral)
				require.NoError(t, err)
				for _, pair := range Pairs() {
					bg := s.Get(pair.Background)
					best := math.Max(
						contrast.Ratio(contrast.WCAG, oklch.Color{L: 1, H: bg.H}, bg),
						contrast.Ratio(contrast.WCAG, oklch.Color{L: 0, H: bg.H}, bg),
					)
					if best < 4.6 {
						continue
					}
					got := contrast.Ratio(contrast.WCAG, s.Get(pair.Foreground), bg)
					assert.GreaterOrEqual(t, got, contrast.ThresholdAA, "%s %s %s %s", p, info.Type, mode, pair.Foreground)
				}
			}
		}
	}
}
