// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Energy evaluates g at the assignment x and rounds to the nearest integer.
//
//	QUBO:  E(x) = xᵀ·M·x + offset
//	Ising: E(s) = s·strictUpper(F)·sᵀ + s·diag(F) + offset,  F = FoldUpper(M)
//
// The QUBO form reads M as stored, so the mirrored halves of a Symmetric
// layout add up to the folded pair coefficient. The result equals what
// bqm.BQM.Energy computes from the same linear/quadratic terms and offset.
//
// Errors:
//   - ErrInvalidGroup, ErrAssignmentLength, ErrAssignmentDomain.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Model) Energy(x []int, g Group) (int64, error) {
	e, err := m.EnergyFloat(x, g)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(e)), nil
}

// EnergyFloat is Energy without the final rounding.
func (m *Model) EnergyFloat(x []int, g Group) (float64, error) {
	d, off, err := m.pick(g)
	if err != nil {
		return 0, modelErrorf(opEnergy, err)
	}
	if len(x) != m.n {
		return 0, modelErrorf(opEnergy, fmt.Errorf("len %d, want %d: %w", len(x), m.n, ErrAssignmentLength))
	}
	v := make([]float64, m.n)
	for i, xi := range x {
		if !m.rep.contains(xi) {
			return 0, modelErrorf(opEnergy, fmt.Errorf("x[%d]=%d in %s: %w", i, xi, m.rep, ErrAssignmentDomain))
		}
		v[i] = float64(xi)
	}
	vec := mat.NewVecDense(m.n, v)

	if m.rep == QUBO {
		a := mat.NewDense(m.n, m.n, d.Flat())
		return mat.Inner(vec, a, vec) + off, nil
	}

	f, _, err := m.folded(g)
	if err != nil {
		return 0, modelErrorf(opEnergy, err)
	}
	data := f.Flat()
	diag := make([]float64, m.n)
	for i := range diag {
		diag[i] = data[i*m.n+i]
		data[i*m.n+i] = 0 // strict upper from here on
	}
	j := mat.NewDense(m.n, m.n, data)

	return mat.Inner(vec, j, vec) + floats.Dot(v, diag) + off, nil
}
