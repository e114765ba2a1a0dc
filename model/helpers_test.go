// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubox/model"
)

// bitStrings enumerates every {0,1}^n assignment in counting order.
func bitStrings(n int) [][]int {
	out := make([][]int, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		x := make([]int, n)
		for i := 0; i < n; i++ {
			x[i] = (mask >> i) & 1
		}
		out = append(out, x)
	}

	return out
}

// spins maps bits to spins through s = 2x-1.
func spins(x []int) []int {
	s := make([]int, len(x))
	for i, b := range x {
		s[i] = 2*b - 1
	}

	return s
}

// sampleQUBO builds a small merged QUBO model with cost and penalty terms.
func sampleQUBO(t testing.TB, opts ...model.Option) *model.Model {
	t.Helper()
	m, err := model.New(model.QUBO, 4, opts...)
	require.NoError(t, err)
	require.NoError(t, m.AddCost(0, 1, 3))
	require.NoError(t, m.AddCost(3, 1, -2))
	require.NoError(t, m.AddCost(2, 2, 5))
	require.NoError(t, m.AddCost(0, 3, 1))
	require.NoError(t, m.AddCostOffset(2))
	require.NoError(t, m.AddOneHot([]int{0, 1, 2}, 4))
	m.Merge()

	return m
}

// independentEnergy evaluates Σ linear·x + Σ quad·x·x + offset directly.
func independentEnergy(t testing.TB, m *model.Model, x []int, g model.Group) float64 {
	t.Helper()
	lin, quad, err := m.LinearQuadratic(g)
	require.NoError(t, err)
	off, err := m.Offset(g)
	require.NoError(t, err)

	e := off
	for i, c := range lin {
		e += c * float64(x[i])
	}
	for p, c := range quad {
		e += c * float64(x[p.I]) * float64(x[p.J])
	}

	return e
}
