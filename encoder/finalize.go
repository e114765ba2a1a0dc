// SPDX-License-Identifier: MIT

package encoder

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/qubox/logger"
	"github.com/katalvlaran/qubox/model"
)

// OneHotGrid adds both one-hot families of an n×n assignment grid whose
// variable (r,c) has index r·n + c: every row sums to one and every column
// sums to one, each with weight alpha.
//
// Complexity: O(n³).
func OneHotGrid(m *model.Model, n int, alpha float64) error {
	row := make([]int, n)
	col := make([]int, n)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			row[c] = r*n + c
			col[c] = c*n + r
		}
		if err := m.AddOneHot(row, alpha); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		if err := m.AddOneHot(col, alpha); err != nil {
			return fmt.Errorf("column %d: %w", r, err)
		}
	}

	return nil
}

// Finalize merges a QUBO model filled by an encoder, converts it to the
// requested representation, applies the requested layout and logs a build
// summary at debug level.
func Finalize(ctx context.Context, kind string, n int, m *model.Model, o Options, start time.Time) (*model.Model, error) {
	m.Merge()
	out := m
	var err error
	switch {
	case o.Representation == m.Representation():
	case o.Representation == model.Ising:
		out, err = m.ToIsing()
	default:
		out, err = m.ToQUBO()
	}
	if err != nil {
		return nil, err
	}
	if out.Layout() != o.Layout {
		if err = out.ApplyLayout(o.Layout); err != nil {
			return nil, err
		}
	}

	log := logger.FromContext(ctx)
	if ev := log.Debug(); ev.Enabled() {
		nz, _ := out.NonZeros(model.All)
		off, _ := out.Offset(model.All)
		ev.Str("encoder", kind).
			Int("n", n).
			Int("vars", out.NumVars()).
			Int("nonzeros", nz).
			Float64("offset", off).
			Stringer("representation", out.Representation()).
			Stringer("layout", out.Layout()).
			Int("workers", o.Workers).
			Dur("elapsed", time.Since(start)).
			Msg("model built")
	}

	return out, nil
}
