// SPDX-License-Identifier: MIT

package qap

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

const kind = "qap"

// ErrInfeasible is returned by Decode for assignments that are not permutations.
var ErrInfeasible = encoder.ErrInfeasible

// Index returns the variable of "facility i at location k" for n facilities.
func Index(i, k, n int) int { return i*n + k }

// Build encodes the instance (weight, dist) given as lists of rows.
//
// Errors:
//   - encoder.ErrEmptyInstance, encoder.ErrNonSquare, matrix.ErrNaNInf,
//     encoder.ErrShapeMismatch, and the encoder.Options validation errors.
func Build(weight, dist [][]float64, opts ...encoder.Option) (*model.Model, error) {
	return BuildContext(context.Background(), weight, dist, opts...)
}

// BuildContext is Build with cancellation of the cost accumulation.
func BuildContext(ctx context.Context, weight, dist [][]float64, opts ...encoder.Option) (*model.Model, error) {
	w, err := encoder.Instance("weight", weight)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	d, err := encoder.Instance("distance", dist)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}

	return build(ctx, w, d, opts)
}

// BuildMatrix is Build for instances already held as matrices.
func BuildMatrix(weight, dist matrix.Matrix, opts ...encoder.Option) (*model.Model, error) {
	w, err := encoder.InstanceMatrix("weight", weight)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	d, err := encoder.InstanceMatrix("distance", dist)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}

	return build(context.Background(), w, d, opts)
}

// build validates options and shape, then fills cost and penalty.
func build(ctx context.Context, w, d *matrix.Dense, opts []encoder.Option) (*model.Model, error) {
	start := time.Now()
	o, err := encoder.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	if err = encoder.SameOrder(w, d); err != nil {
		return nil, fmt.Errorf("qap: weight/distance: %w", err)
	}

	n := w.Rows()
	raw, err := costMatrix(ctx, w, d, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("qap: cost: %w", err)
	}

	m, err := model.New(model.QUBO, n*n)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	if err = m.SetCostMatrix(raw); err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}
	if err = encoder.OneHotGrid(m, n, o.Alpha); err != nil {
		return nil, fmt.Errorf("qap: penalty: %w", err)
	}

	out, err := encoder.Finalize(ctx, kind, n, m, o, start)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}

	return out, nil
}

// costMatrix accumulates raw[Index(i,k)][Index(j,l)] += W[i,j]·D[k,l] over
// every (i,j,k,l). Facility i owns rows Index(i,·), so facilities are
// scattered across workers without contention. The result still has
// coefficients on both sides of the diagonal; the model folds them.
//
// Complexity: O(n⁴).
func costMatrix(ctx context.Context, w, d *matrix.Dense, workers int) (*matrix.Dense, error) {
	n := w.Rows()
	raw, err := matrix.NewDense(n*n, n*n)
	if err != nil {
		return nil, err
	}
	wf, df := w.Flat(), d.Flat()

	err = encoder.ScatterRows(ctx, n, workers, func(ctx context.Context, i int) error {
		var j, k, l int
		var wij float64
		for j = 0; j < n; j++ {
			if wij = wf[i*n+j]; wij == 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			for k = 0; k < n; k++ {
				for l = 0; l < n; l++ {
					if df[k*n+l] == 0 {
						continue
					}
					if err := raw.AddAt(Index(i, k, n), Index(j, l, n), wij*df[k*n+l]); err != nil {
						return err
					}
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

// Decode returns perm with perm[i] = location of facility i from a feasible
// sample (bits, or spins with +1 as set).
//
// Errors:
//   - ErrInfeasible.
func Decode(x []int, n int) ([]int, error) {
	perm, err := encoder.DecodeGrid(x, n)
	if err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}

	return perm, nil
}

// Encode returns the bit assignment of perm.
func Encode(perm []int) ([]int, error) {
	if err := encoder.ValidatePermutation(perm, len(perm)); err != nil {
		return nil, fmt.Errorf("qap: %w", err)
	}

	return encoder.EncodeGrid(perm), nil
}

// AssignmentCost returns Σ_{i,j} W[i,j]·D[perm[i],perm[j]].
//
// Errors:
//   - ErrInfeasible when perm is not a permutation of the instance order,
//     plus the Build instance errors.
func AssignmentCost(weight, dist [][]float64, perm []int) (float64, error) {
	n, err := encoder.SquareOrder("weight", weight)
	if err != nil {
		return 0, fmt.Errorf("qap: %w", err)
	}
	nd, err := encoder.SquareOrder("distance", dist)
	if err != nil {
		return 0, fmt.Errorf("qap: %w", err)
	}
	if nd != n {
		return 0, fmt.Errorf("qap: %d vs %d: %w", n, nd, encoder.ErrShapeMismatch)
	}
	if err = encoder.ValidatePermutation(perm, n); err != nil {
		return 0, fmt.Errorf("qap: %w", err)
	}

	var sum float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum += weight[i][j] * dist[perm[i]][perm[j]]
		}
	}

	return sum, nil
}
