// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/qubox/matrix"

// folded returns the upper-folded matrix of g and its offset. For the Upper
// layout this is a copy of the stored matrix; for Symmetric the mirrored
// halves are summed back into one coefficient per pair.
func (m *Model) folded(g Group) (*matrix.Dense, float64, error) {
	d, off, err := m.pick(g)
	if err != nil {
		return nil, 0, err
	}
	f, err := matrix.FoldUpper(d)
	if err != nil {
		return nil, 0, err
	}

	return f, off, nil
}

// Triples lists every non-zero coefficient (i, j, c) with i <= j of g,
// row-major then by column.
//
// Errors:
//   - ErrInvalidGroup.
//
// Complexity:
//   - Time O(n²).
func (m *Model) Triples(g Group) ([]Triple, error) {
	f, _, err := m.folded(g)
	if err != nil {
		return nil, modelErrorf(opTriples, err)
	}

	data := f.Flat()
	out := make([]Triple, 0, m.n)
	var i, j int
	var c float64
	for i = 0; i < m.n; i++ {
		for j = i; j < m.n; j++ {
			if c = data[i*m.n+j]; c != 0 {
				out = append(out, Triple{I: i, J: j, Coef: c})
			}
		}
	}

	return out, nil
}

// LinearQuadratic splits g into its linear part (one key per variable, zeros
// included) and its non-zero pairwise part keyed by Pair{i,j}, i<j.
//
// Errors:
//   - ErrInvalidGroup.
func (m *Model) LinearQuadratic(g Group) (map[int]float64, map[Pair]float64, error) {
	f, _, err := m.folded(g)
	if err != nil {
		return nil, nil, modelErrorf(opLinearQuad, err)
	}

	data := f.Flat()
	linear := make(map[int]float64, m.n)
	quadratic := make(map[Pair]float64)
	var i, j int
	var c float64
	for i = 0; i < m.n; i++ {
		linear[i] = data[i*m.n+i]
		for j = i + 1; j < m.n; j++ {
			if c = data[i*m.n+j]; c != 0 {
				quadratic[Pair{I: i, J: j}] = c
			}
		}
	}

	return linear, quadratic, nil
}

// Terms returns every non-zero coefficient of g under one mapping; linear
// terms are keyed by Pair{i,i}.
//
// Errors:
//   - ErrInvalidGroup.
func (m *Model) Terms(g Group) (map[Pair]float64, error) {
	ts, err := m.Triples(g)
	if err != nil {
		return nil, modelErrorf(opTerms, err)
	}

	out := make(map[Pair]float64, len(ts))
	for _, t := range ts {
		out[Pair{I: t.I, J: t.J}] = t.Coef
	}

	return out, nil
}

// NonZeros counts the non-zero coefficients of g in upper-folded form.
func (m *Model) NonZeros(g Group) (int, error) {
	ts, err := m.Triples(g)
	if err != nil {
		return 0, modelErrorf(opNonZeros, err)
	}

	return len(ts), nil
}
