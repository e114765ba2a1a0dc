// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/qubox/matrix"
)

// ToIsing returns the model rewritten in spins through x = (s+1)/2. Cost and
// penalty are converted separately, their offsets shifted by the constant
// the substitution produces, and the result is merged. Energies agree:
// the Ising energy at s = 2x−1 equals the QUBO energy at x.
// An Ising model yields a clone.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Model) ToIsing() (*Model, error) { return m.convert(Ising) }

// ToQUBO returns the model rewritten in bits through s = 2x−1. The QUBO
// coefficients are truncated to integers (see matrix.IsingToQUBO), so the
// energies agree when every produced coefficient is already integral, as for
// any model obtained from an integral QUBO through ToIsing.
// A QUBO model yields a clone.
func (m *Model) ToQUBO() (*Model, error) { return m.convert(QUBO) }

// convert builds the model in representation to.
func (m *Model) convert(to Representation) (*Model, error) {
	if to == m.rep {
		return m.Clone(), nil
	}
	out, err := New(to, m.n, WithLayout(m.layout))
	if err != nil {
		return nil, modelErrorf(opConvert, err)
	}

	var off float64
	if out.cost, off, err = out.convertTerm(m.cost); err != nil {
		return nil, modelErrorf(opConvert, err)
	}
	out.costOffset = m.costOffset + off
	if out.penalty, off, err = out.convertTerm(m.penalty); err != nil {
		return nil, modelErrorf(opConvert, err)
	}
	out.penaltyOffset = m.penaltyOffset + off
	out.Merge()

	return out, nil
}

// convertTerm folds d, converts it into the representation of m and lays it
// out in m's layout. The second result is the constant of the substitution.
func (m *Model) convertTerm(d *matrix.Dense) (*matrix.Dense, float64, error) {
	f, err := matrix.FoldUpper(d)
	if err != nil {
		return nil, 0, err
	}

	var conv *matrix.Dense
	var off float64
	if m.rep == Ising {
		if conv, err = matrix.QUBOToIsing(f); err == nil {
			off, err = matrix.QUBOToIsingOffset(f)
		}
	} else {
		if conv, err = matrix.IsingToQUBO(f); err == nil {
			off, err = matrix.IsingToQUBOOffset(f)
		}
	}
	if err != nil {
		return nil, 0, err
	}
	if conv, err = m.arrange(conv); err != nil {
		return nil, 0, err
	}

	return conv, off, nil
}
