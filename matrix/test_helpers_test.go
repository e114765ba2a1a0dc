// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubox/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (FromMatrix copy) path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// quadForm computes x·m·xᵀ over the full matrix through At.
func quadForm(t testing.TB, m matrix.Matrix, x []float64) float64 {
	t.Helper()
	var sum float64
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			sum += x[i] * v * x[j]
		}
	}

	return sum
}

// isingForm computes s·strictUpper(h)·sᵀ + s·diag(h).
func isingForm(t testing.TB, h matrix.Matrix, s []float64) float64 {
	t.Helper()
	var sum float64
	var i, j int
	for i = 0; i < h.Rows(); i++ {
		v, err := h.At(i, i)
		require.NoError(t, err)
		sum += v * s[i]
		for j = i + 1; j < h.Cols(); j++ {
			v, err = h.At(i, j)
			require.NoError(t, err)
			sum += s[i] * v * s[j]
		}
	}

	return sum
}
