// SPDX-License-Identifier: MIT

package qap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
	"github.com/katalvlaran/qubox/qap"
)

// TestTwoFacilityExample checks the classic 2×2 instance: both permutations cost 4.
func TestTwoFacilityExample(t *testing.T) {
	w := [][]float64{{0, 1}, {1, 0}}
	d := [][]float64{{0, 2}, {2, 0}}
	m, err := qap.Build(w, d, encoder.WithAlpha(1))
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVars())
	require.True(t, m.Merged())

	for _, x := range [][]int{{1, 0, 0, 1}, {0, 1, 1, 0}} {
		e, err := m.Energy(x, model.All)
		require.NoError(t, err)
		require.Equal(t, int64(4), e, "x=%v", x)

		pen, err := m.Energy(x, model.Penalty)
		require.NoError(t, err)
		require.Zero(t, pen)
	}

	ts, err := m.Triples(model.Cost)
	require.NoError(t, err)
	require.Equal(t, []model.Triple{{I: 0, J: 3, Coef: 4}, {I: 1, J: 2, Coef: 4}}, ts)

	off, err := m.Offset(model.Penalty)
	require.NoError(t, err)
	require.Equal(t, 4.0, off) // α·n per family, two families
}

// TestFeasibleEnergyIsAssignmentCost runs every permutation through every
// representation and layout.
func TestFeasibleEnergyIsAssignmentCost(t *testing.T) {
	for _, rep := range []model.Representation{model.QUBO, model.Ising} {
		for _, layout := range []matrix.Layout{matrix.Upper, matrix.Symmetric} {
			m, err := qap.Build(flow3, dist3,
				encoder.WithAlpha(50),
				encoder.WithRepresentation(rep),
				encoder.WithLayout(layout),
			)
			require.NoError(t, err)
			require.Equal(t, rep, m.Representation())
			require.Equal(t, layout, m.Layout())

			for _, perm := range permutations(3) {
				x, err := qap.Encode(perm)
				require.NoError(t, err)
				want, err := qap.AssignmentCost(flow3, dist3, perm)
				require.NoError(t, err)

				if rep == model.Ising {
					x = spins(x)
				}
				e, err := m.Energy(x, model.All)
				require.NoError(t, err)
				require.Equal(t, int64(want), e, "rep=%s layout=%s perm=%v", rep, layout, perm)

				got, err := qap.Decode(x, 3)
				require.NoError(t, err)
				require.Equal(t, perm, got)
			}
		}
	}
}

// TestGroundStateIsOptimalAssignment brute-forces all 2^9 assignments.
func TestGroundStateIsOptimalAssignment(t *testing.T) {
	m, err := qap.Build(flow3, dist3, encoder.WithAlpha(100))
	require.NoError(t, err)

	best := math.Inf(1)
	for _, perm := range permutations(3) {
		c, err := qap.AssignmentCost(flow3, dist3, perm)
		require.NoError(t, err)
		best = math.Min(best, c)
	}

	minE := int64(math.MaxInt64)
	var argmin []int
	for _, x := range bitStrings(9) {
		e, err := m.Energy(x, model.All)
		require.NoError(t, err)
		if e < minE {
			minE, argmin = e, x
		}
	}
	require.Equal(t, int64(best), minE)
	_, err = qap.Decode(argmin, 3)
	require.NoError(t, err)
}

// TestParallelMatchesSequential compares the stored matrices bit for bit.
func TestParallelMatchesSequential(t *testing.T) {
	n := 5
	w := make([][]float64, n)
	d := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			w[i][j] = float64((i*7 + j*3) % 5)
			d[i][j] = float64((i + 2*j) % 4)
		}
	}

	seq, err := qap.Build(w, d, encoder.WithAlpha(3))
	require.NoError(t, err)
	par, err := qap.Build(w, d, encoder.WithAlpha(3), encoder.WithWorkers(4))
	require.NoError(t, err)

	for _, g := range []model.Group{model.All, model.Cost, model.Penalty} {
		a, err := seq.Dense(g)
		require.NoError(t, err)
		b, err := par.Dense(g)
		require.NoError(t, err)
		require.Equal(t, a, b, "group=%s", g)
	}
}

// TestBuildMatrixMatchesBuild feeds the same instance as matrices.
func TestBuildMatrixMatchesBuild(t *testing.T) {
	wm, err := matrix.NewDenseFrom(flow3)
	require.NoError(t, err)
	dm, err := matrix.NewDenseFrom(dist3)
	require.NoError(t, err)

	a, err := qap.Build(flow3, dist3)
	require.NoError(t, err)
	b, err := qap.BuildMatrix(wm, dm)
	require.NoError(t, err)

	ta, err := a.Triples(model.All)
	require.NoError(t, err)
	tb, err := b.Triples(model.All)
	require.NoError(t, err)
	require.Equal(t, ta, tb)
}

// TestBuildErrors covers the construction error taxonomy.
func TestBuildErrors(t *testing.T) {
	_, err := qap.Build(nil, dist3)
	require.ErrorIs(t, err, encoder.ErrEmptyInstance)

	_, err = qap.Build([][]float64{{0, 1}, {1}}, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, encoder.ErrNonSquare)

	_, err = qap.Build([][]float64{{0, 1}, {1, 0}}, dist3)
	require.ErrorIs(t, err, encoder.ErrShapeMismatch)

	_, err = qap.Build(flow3, [][]float64{{0, math.Inf(1), 0}, {0, 0, 0}, {0, 0, 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = qap.Build(flow3, dist3, encoder.WithRepresentation(model.Representation(9)))
	require.ErrorIs(t, err, model.ErrInvalidRepresentation)

	_, err = qap.BuildMatrix(nil, nil)
	require.ErrorIs(t, err, encoder.ErrEmptyInstance)

	_, err = qap.Decode([]int{1, 1, 0, 0}, 2)
	require.ErrorIs(t, err, qap.ErrInfeasible)

	_, err = qap.Encode([]int{0, 0})
	require.ErrorIs(t, err, qap.ErrInfeasible)

	_, err = qap.AssignmentCost(flow3, dist3, []int{0, 1})
	require.ErrorIs(t, err, qap.ErrInfeasible)
}

// TestSingleFacility covers the smallest instance.
func TestSingleFacility(t *testing.T) {
	m, err := qap.Build([][]float64{{2}}, [][]float64{{3}}, encoder.WithAlpha(5))
	require.NoError(t, err)
	e, err := m.Energy([]int{1}, model.All)
	require.NoError(t, err)
	require.Equal(t, int64(6), e)
	e, err = m.Energy([]int{0}, model.All)
	require.NoError(t, err)
	require.Equal(t, int64(10), e)
}

func TestIndex(t *testing.T) {
	require.Equal(t, 0, qap.Index(0, 0, 4))
	require.Equal(t, 7, qap.Index(1, 3, 4))
	require.Equal(t, 15, qap.Index(3, 3, 4))
}
