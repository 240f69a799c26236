// SPDX-License-Identifier: MIT
package logging

import (
	"github.com/rs/zerolog"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// Diagnostics logs best-effort generation outcomes. It implements
// themes.Diagnostics.
type Diagnostics struct {
	Logger zerolog.Logger
}

// NewDiagnostics returns Diagnostics on the "engine" component logger.
func NewDiagnostics() Diagnostics {
	return Diagnostics{Logger: Component("engine")}
}

// Reporter logs unmet pairs of mode at debug level.
func (d Diagnostics) Reporter(mode tokens.Mode) tokens.Reporter {
	return ContrastReporter(d.Logger.With().Str("mode", string(mode)).Logger())
}

func (d Diagnostics) SecondaryIgnored(input string, err error) {
	d.Logger.Info().
		Err(err).
		Str("secondary", input).
		Msg("unparseable secondary color ignored")
}

// ContrastReporter adapts logger to tokens.Reporter.
func ContrastReporter(logger zerolog.Logger) tokens.Reporter {
	return tokens.ReporterFunc(func(p tokens.Pair, res contrast.Enforcement) {
		logPair(logger.Debug(), p, res).Msg("contrast target not reached")
	})
}

func logPair(e *zerolog.Event, p tokens.Pair, res contrast.Enforcement) *zerolog.Event {
	return e.
		Stringer("foreground", p.Foreground).
		Stringer("background", p.Background).
		Float64("target", p.Target).
		Int("iterations", res.Iterations).
		Str("final_fg", res.Foreground.String()).
		Str("final_bg", res.Background.String())
}
