// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

const kind = "tsp"

// ErrInfeasible is returned by Decode and the tour helpers for samples or
// tours that do not visit every location exactly once.
var ErrInfeasible = encoder.ErrInfeasible

// Index returns the variable of "location u at step t" for n locations.
func Index(t, u, n int) int { return t*n + u }

// Build encodes the distance matrix dist given as a list of rows.
//
// Errors:
//   - encoder.ErrEmptyInstance, encoder.ErrNonSquare, matrix.ErrNaNInf and
//     the encoder.Options validation errors.
func Build(dist [][]float64, opts ...encoder.Option) (*model.Model, error) {
	return BuildContext(context.Background(), dist, opts...)
}

// BuildContext is Build with cancellation of the cost accumulation.
func BuildContext(ctx context.Context, dist [][]float64, opts ...encoder.Option) (*model.Model, error) {
	d, err := encoder.Instance("distance", dist)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return build(ctx, d, opts)
}

// BuildMatrix is Build for a distance matrix already held as a matrix.
func BuildMatrix(dist matrix.Matrix, opts ...encoder.Option) (*model.Model, error) {
	d, err := encoder.InstanceMatrix("distance", dist)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return build(context.Background(), d, opts)
}

// build validates options, then fills cost and penalty.
func build(ctx context.Context, d *matrix.Dense, opts []encoder.Option) (*model.Model, error) {
	start := time.Now()
	o, err := encoder.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	n := d.Rows()
	raw, err := costMatrix(ctx, d, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("tsp: cost: %w", err)
	}

	m, err := model.New(model.QUBO, n*n)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}
	if err = m.SetCostMatrix(raw); err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}
	if err = encoder.OneHotGrid(m, n, o.Alpha); err != nil {
		return nil, fmt.Errorf("tsp: penalty: %w", err)
	}

	out, err := encoder.Finalize(ctx, kind, n, m, o, start)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return out, nil
}

// costMatrix accumulates raw[Index(t,u)][Index(t+1 mod n, v)] += D[u,v] for
// every (t,u,v). Step t owns rows Index(t,·), so steps are scattered across
// workers without contention. The model folds the result into one triangle.
//
// Complexity: O(n³).
func costMatrix(ctx context.Context, d *matrix.Dense, workers int) (*matrix.Dense, error) {
	n := d.Rows()
	raw, err := matrix.NewDense(n*n, n*n)
	if err != nil {
		return nil, err
	}
	df := d.Flat()

	err = encoder.ScatterRows(ctx, n, workers, func(ctx context.Context, t int) error {
		next := (t + 1) % n
		var u, v int
		for u = 0; u < n; u++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for v = 0; v < n; v++ {
				if df[u*n+v] == 0 {
					continue
				}
				if err := raw.AddAt(Index(t, u, n), Index(next, v, n), df[u*n+v]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// Decode returns tour with tour[t] = location visited at step t from a
// feasible sample (bits, or spins with +1 as set).
//
// Errors:
//   - ErrInfeasible.
func Decode(x []int, n int) ([]int, error) {
	tour, err := encoder.DecodeGrid(x, n)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return tour, nil
}

// Encode returns the bit assignment of tour.
func Encode(tour []int) ([]int, error) {
	if err := encoder.ValidatePermutation(tour, len(tour)); err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return encoder.EncodeGrid(tour), nil
}
