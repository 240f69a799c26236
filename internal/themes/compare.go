// SPDX-License-Identifier: MIT
package themes

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/thatcatcamp/huekit/internal/harmony"
)

// Comparison is one cell of a harmony comparison grid.
type Comparison struct {
	Harmony harmony.Info    `json:"harmony"`
	Theme   *GeneratedTheme `json:"theme"`
}

// CompareHarmonies generates one theme per harmony type in parallel. An
// empty types list compares every harmony. Results keep the order of types.
func CompareHarmonies(ctx context.Context, primary, secondary string, types []harmony.Type, opts Options) ([]Comparison, error) {
	if len(types) == 0 {
		for _, info := range harmony.All() {
			types = append(types, info.Type)
		}
	}

	out := make([]Comparison, len(types))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range types {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			th, err := Generate(Request{
				Primary:   primary,
				Secondary: secondary,
				Harmony:   t,
				Options:   opts,
			})
			if err != nil {
				return err
			}
			info, ok := t.Describe()
			if !ok {
				info = harmony.Info{Type: t, Name: string(t)}
			}
			out[i] = Comparison{Harmony: info, Theme: th}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
