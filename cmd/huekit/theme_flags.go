// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thatcatcamp/huekit/internal/config"
	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/logging"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// themeFlags are the generation inputs shared by generate and project
type themeFlags struct {
	primary    string
	secondary  string
	harmony    string
	background string
	gamut      string
	model      string
	radius     float64
}

func (f *themeFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.primary, "primary", "p", "", "primary color (hex, rgb(), hsl() or oklch())")
	fs.StringVarP(&f.secondary, "secondary", "s", "", "optional secondary color")
	fs.StringVar(&f.harmony, "harmony", "", "harmony rule (see 'huekit harmonies')")
	fs.StringVar(&f.background, "background", "", "background strategy: neutral or primary")
	fs.StringVar(&f.gamut, "gamut", "", "gamut ceiling: srgb, p3 or rec2020")
	fs.StringVar(&f.model, "model", "", "contrast model: oklch or wcag")
	fs.Float64Var(&f.radius, "radius", -1, "corner radius in rem (0-1)")
}

// resolved merges the flags over the configured defaults
type resolved struct {
	harmony harmony.Type
	radius  float64
	opts    themes.Options
}

func (f *themeFlags) resolve(cmd *cobra.Command) (resolved, error) {
	d, err := config.Theme()
	if err != nil {
		return resolved{}, err
	}
	r := resolved{harmony: d.Harmony, radius: d.Radius, opts: d.Options}
	r.opts.Diagnostics = logging.NewDiagnostics()

	if f.harmony != "" {
		if r.harmony, err = harmony.Parse(f.harmony); err != nil {
			return r, err
		}
	}
	if f.background != "" {
		if r.opts.BackgroundStrategy, err = tokens.ParseBackgroundStrategy(f.background); err != nil {
			return r, err
		}
	}
	if f.gamut != "" {
		if r.opts.Gamut, err = oklch.ParseGamut(f.gamut); err != nil {
			return r, err
		}
	}
	if f.model != "" {
		if r.opts.Model, err = contrast.ParseModel(f.model); err != nil {
			return r, err
		}
	}
	if cmd.Flags().Changed("radius") {
		r.radius = themes.RadiusRem(f.radius)
	}
	return r, nil
}
