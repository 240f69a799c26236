// SPDX-License-Identifier: MIT

// Package themes assembles complete light and dark themes from color inputs
// and renders them as CSS and design-token documents.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// ErrInvalidPrimary means no theme can be built because the primary color
// did not parse.
var ErrInvalidPrimary = errors.New("invalid primary color")

// Diagnostics receives best-effort outcomes that do not fail a generation.
// Reporter returns the sink for pairs of mode that miss their target.
type Diagnostics interface {
	Reporter(mode tokens.Mode) tokens.Reporter
	SecondaryIgnored(input string, err error)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Reporter(tokens.Mode) tokens.Reporter { return tokens.NopReporter{} }
func (nopDiagnostics) SecondaryIgnored(string, error)       {}

// Options tune a generation. The zero value is neutral surfaces in sRGB
// under the Lightness contrast model.
type Options struct {
	BackgroundStrategy tokens.BackgroundStrategy
	Gamut              oklch.Gamut
	Model              contrast.Model
	Diagnostics        Diagnostics
}

func (o Options) model() contrast.Model {
	if o.Model == nil {
		return contrast.Lightness
	}
	return o.Model
}

func (o Options) diagnostics() Diagnostics {
	if o.Diagnostics == nil {
		return nopDiagnostics{}
	}
	return o.Diagnostics
}

// Request is one generation input tuple.
type Request struct {
	Primary   string
	Secondary string
	Harmony   harmony.Type
	Options   Options
}

// ThemeTokens holds the two independent mode sets.
type ThemeTokens struct {
	Light tokens.Set `json:"light"`
	Dark  tokens.Set `json:"dark"`
}

// Mode returns the set for m.
func (t ThemeTokens) Mode(m tokens.Mode) tokens.Set {
	if m == tokens.Dark {
		return t.Dark
	}
	return t.Light
}

// ContrastWarning records the validation of one pair in one mode. Warning is
// set when the pair misses AA.
type ContrastWarning struct {
	Mode       tokens.Mode     `json:"mode"`
	Token      tokens.Token    `json:"token"`
	Foreground tokens.Token    `json:"foreground"`
	Background tokens.Token    `json:"background"`
	Result     contrast.Result `json:"result"`
	Warning    bool            `json:"warning"`
}

// GeneratedTheme is the engine's output.
type GeneratedTheme struct {
	Tokens           ThemeTokens       `json:"tokens"`
	ContrastWarnings []ContrastWarning `json:"contrastWarnings"`
}

// Generate parses the inputs, derives anchors and maps, enforces and
// validates both modes. An unparseable secondary is dropped and reported to
// Diagnostics; an unparseable primary returns ErrInvalidPrimary.
func Generate(req Request) (*GeneratedTheme, error) {
	primary, err := oklch.Parse(req.Primary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrimary, err)
	}

	opts := req.Options
	diag := opts.diagnostics()

	input := harmony.Single(primary)
	if s := strings.TrimSpace(req.Secondary); s != "" {
		secondary, err := oklch.Parse(s)
		if err != nil {
			diag.SecondaryIgnored(req.Secondary, err)
		} else {
			input = harmony.Dual(primary, secondary)
		}
	}

	anchors := harmony.GenerateAnchors(input, req.Harmony)
	mapper := tokens.NewMapper(opts.Gamut, opts.model())

	var tt ThemeTokens
	for _, mode := range tokens.Modes {
		set, err := mapper.Map(anchors, mode, opts.BackgroundStrategy)
		if err != nil {
			return nil, fmt.Errorf("map %s tokens: %w", mode, err)
		}
		set = tokens.Enforce(set, mapper.Enforcer, diag.Reporter(mode))
		if mode == tokens.Dark {
			tt.Dark = set
		} else {
			tt.Light = set
		}
	}

	return &GeneratedTheme{
		Tokens:           tt,
		ContrastWarnings: Validate(tt, opts.model()),
	}, nil
}

// Validate checks every pair in both modes, one entry per pair and mode.
func Validate(tt ThemeTokens, m contrast.Model) []ContrastWarning {
	if m == nil {
		m = contrast.Lightness
	}
	pairs := tokens.Pairs()
	out := make([]ContrastWarning, 0, len(pairs)*len(tokens.Modes))
	for _, mode := range tokens.Modes {
		set := tt.Mode(mode)
		for _, p := range pairs {
			res := contrast.Check(m, set.Get(p.Foreground), set.Get(p.Background))
			out = append(out, ContrastWarning{
				Mode:       mode,
				Token:      p.Foreground,
				Foreground: p.Foreground,
				Background: p.Background,
				Result:     res,
				Warning:    !res.AA,
			})
		}
	}
	return out
}

// Failing returns the entries with Warning set.
func Failing(ws []ContrastWarning) []ContrastWarning {
	var out []ContrastWarning
	for _, w := range ws {
		if w.Warning {
			out = append(out, w)
		}
	}
	return out
}
