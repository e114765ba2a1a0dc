// SPDX-License-Identifier: MIT
// Package: model
//
// Purpose:
//   - Own the cost / penalty / combined matrices and offsets of one energy model.
//   - Keep every stored matrix in the model layout: in matrix.Upper nothing is
//     ever written below the diagonal; in matrix.Symmetric every pair is split
//     into mirrored halves.
//
// Contract:
//   - Mutators validate indices and finiteness and wrap failures with modelErrorf.
//   - Merge is explicit. Any mutation clears the merged flag; combined is not
//     recomputed until the next Merge.

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qubox/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opNew          = "New"
	opAddCost      = "AddCost"
	opAddPenalty   = "AddPenalty"
	opSetCost      = "SetCostMatrix"
	opSetPenalty   = "SetPenaltyMatrix"
	opAddOneHot    = "AddOneHot"
	opSelect       = "Select"
	opApplyLayout  = "ApplyLayout"
	opConvert      = "Convert"
	opEnergy       = "Energy"
	opTriples      = "Triples"
	opLinearQuad   = "LinearQuadratic"
	opTerms        = "Terms"
	opDense        = "Dense"
	opOffset       = "Offset"
	opNonZeros     = "NonZeros"
	opAddPenaltyOf = "AddPenaltyOffset"
	opAddCostOf    = "AddCostOffset"
)

// modelErrorf wraps err with an operation tag, preserving it for errors.Is.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Model is a quadratic energy model over n variables.
// A Model is not safe for concurrent mutation.
type Model struct {
	rep    Representation
	layout matrix.Layout
	n      int

	cost     *matrix.Dense
	penalty  *matrix.Dense
	combined *matrix.Dense

	costOffset     float64
	penaltyOffset  float64
	combinedOffset float64

	merged bool
}

// New allocates an all-zero model of n variables.
//
// Errors:
//   - ErrInvalidRepresentation, matrix.ErrInvalidLayout, ErrVariableCount (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(rep Representation, n int, opts ...Option) (*Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := rep.Validate(); err != nil {
		return nil, modelErrorf(opNew, err)
	}
	if err := o.Layout.Validate(); err != nil {
		return nil, modelErrorf(opNew, err)
	}
	if n <= 0 {
		return nil, modelErrorf(opNew, fmt.Errorf("n=%d: %w", n, ErrVariableCount))
	}

	m := &Model{rep: rep, layout: o.Layout, n: n}
	var err error
	if m.cost, err = matrix.NewDense(n, n); err != nil {
		return nil, modelErrorf(opNew, err)
	}
	m.penalty = m.cost.CloneDense()
	m.combined = m.cost.CloneDense()

	return m, nil
}

// Representation returns the variable domain of the model.
func (m *Model) Representation() Representation { return m.rep }

// Layout returns the storage layout of the model.
func (m *Model) Layout() matrix.Layout { return m.layout }

// NumVars returns the variable count n.
func (m *Model) NumVars() int { return m.n }

// Merged reports whether combined reflects the current cost and penalty.
func (m *Model) Merged() bool { return m.merged }

// AddCost accumulates v onto the cost coefficient of the pair (i,j);
// i == j addresses the linear term of variable i.
func (m *Model) AddCost(i, j int, v float64) error {
	if err := m.addPair(m.cost, i, j, v); err != nil {
		return modelErrorf(opAddCost, err)
	}
	m.merged = false

	return nil
}

// AddPenalty accumulates v onto the penalty coefficient of the pair (i,j).
func (m *Model) AddPenalty(i, j int, v float64) error {
	if err := m.addPair(m.penalty, i, j, v); err != nil {
		return modelErrorf(opAddPenalty, err)
	}
	m.merged = false

	return nil
}

// AddCostOffset accumulates v onto the cost offset.
func (m *Model) AddCostOffset(v float64) error {
	if isNonFinite(v) {
		return modelErrorf(opAddCostOf, matrix.ErrNaNInf)
	}
	m.costOffset += v
	m.merged = false

	return nil
}

// AddPenaltyOffset accumulates v onto the penalty offset.
func (m *Model) AddPenaltyOffset(v float64) error {
	if isNonFinite(v) {
		return modelErrorf(opAddPenaltyOf, matrix.ErrNaNInf)
	}
	m.penaltyOffset += v
	m.merged = false

	return nil
}

// SetCostMatrix replaces the cost matrix with c re-expressed in the model
// layout: c is folded (lower coefficients join their upper mirror) first.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
//     ErrVariableCount when c is not n×n.
func (m *Model) SetCostMatrix(c matrix.Matrix) error {
	d, err := m.arrangeInput(c)
	if err != nil {
		return modelErrorf(opSetCost, err)
	}
	m.cost = d
	m.merged = false

	return nil
}

// SetPenaltyMatrix replaces the penalty matrix, like SetCostMatrix.
func (m *Model) SetPenaltyMatrix(p matrix.Matrix) error {
	d, err := m.arrangeInput(p)
	if err != nil {
		return modelErrorf(opSetPenalty, err)
	}
	m.penalty = d
	m.merged = false

	return nil
}

// AddOneHot adds the penalty alpha·(Σ_{v∈vars} x_v − 1)², which is zero
// exactly when one variable of the group is set. In bits it expands to
//
//	+2α·x_a·x_b  for every pair a<b of the group
//	−α·x_a       for every member
//	+α           on the penalty offset
//
// For an Ising model the same polynomial is added after x = (s+1)/2.
//
// Errors:
//   - ErrIndexOutOfRange for an index outside [0,n) or a repeated index,
//     matrix.ErrNaNInf for a non-finite alpha.
//
// Complexity:
//   - Time O(k²) for a group of k variables.
func (m *Model) AddOneHot(vars []int, alpha float64) error {
	if isNonFinite(alpha) {
		return modelErrorf(opAddOneHot, matrix.ErrNaNInf)
	}
	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if v < 0 || v >= m.n {
			return modelErrorf(opAddOneHot, fmt.Errorf("index %d: %w", v, ErrIndexOutOfRange))
		}
		if _, dup := seen[v]; dup {
			return modelErrorf(opAddOneHot, fmt.Errorf("index %d repeated: %w", v, ErrIndexOutOfRange))
		}
		seen[v] = struct{}{}
	}

	var a, b int
	for a = 0; a < len(vars); a++ {
		for b = a + 1; b < len(vars); b++ {
			if err := m.addBits(vars[a], vars[b], 2*alpha); err != nil {
				return modelErrorf(opAddOneHot, err)
			}
		}
		if err := m.addBits(vars[a], vars[a], -alpha); err != nil {
			return modelErrorf(opAddOneHot, err)
		}
	}
	m.penaltyOffset += alpha
	m.merged = false

	return nil
}

// addBits adds the bit-form penalty term v·x_i·x_j (v·x_i when i == j) in
// the model representation.
func (m *Model) addBits(i, j int, v float64) error {
	if m.rep == QUBO {
		return m.addPair(m.penalty, i, j, v)
	}

	// x_i·x_j = (s_i·s_j + s_i + s_j + 1)/4 and x_i = (s_i + 1)/2.
	if i == j {
		m.penaltyOffset += v / 2
		return m.addPair(m.penalty, i, i, v/2)
	}
	q := v / 4
	if err := m.addPair(m.penalty, i, j, q); err != nil {
		return err
	}
	if err := m.addPair(m.penalty, i, i, q); err != nil {
		return err
	}
	if err := m.addPair(m.penalty, j, j, q); err != nil {
		return err
	}
	m.penaltyOffset += q

	return nil
}

// addPair stores v for (i,j) in the model layout.
func (m *Model) addPair(d *matrix.Dense, i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	if i == j {
		return d.AddAt(i, i, v)
	}
	if i > j {
		i, j = j, i
	}
	if m.layout == matrix.Upper {
		return d.AddAt(i, j, v)
	}
	if err := d.AddAt(i, j, v/2); err != nil {
		return err
	}

	return d.AddAt(j, i, v/2)
}

// arrangeInput validates an n×n input and returns it folded into the model layout.
func (m *Model) arrangeInput(in matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(in); err != nil {
		return nil, err
	}
	if in.Rows() != m.n {
		return nil, fmt.Errorf("order %d, want %d: %w", in.Rows(), m.n, ErrVariableCount)
	}
	if err := matrix.ValidateFinite(in); err != nil {
		return nil, err
	}
	up, err := matrix.FoldUpper(in)
	if err != nil {
		return nil, err
	}

	return m.arrange(up)
}

// arrange re-expresses an upper-layout matrix in the model layout.
func (m *Model) arrange(up *matrix.Dense) (*matrix.Dense, error) {
	if m.layout == matrix.Upper {
		return up, nil
	}

	return matrix.SymmetrizeLayout(up, m.layout)
}

// Merge sets combined = cost + penalty and combinedOffset = costOffset +
// penaltyOffset. Idempotent.
func (m *Model) Merge() {
	sum, err := matrix.Add(m.cost, m.penalty)
	if err != nil {
		// cost and penalty are always n×n and finite.
		panic(modelErrorf("Merge", err))
	}
	m.combined = sum
	m.combinedOffset = m.costOffset + m.penaltyOffset
	m.merged = true
}

// pick returns the stored matrix and offset of g without copying.
func (m *Model) pick(g Group) (*matrix.Dense, float64, error) {
	switch g {
	case All:
		return m.combined, m.combinedOffset, nil
	case Cost:
		return m.cost, m.costOffset, nil
	case Penalty:
		return m.penalty, m.penaltyOffset, nil
	default:
		return nil, 0, fmt.Errorf("%s: %w", g, ErrInvalidGroup)
	}
}

// Select returns a copy of the matrix of g together with its offset:
// All → combined, Cost → cost, Penalty → penalty.
//
// Errors:
//   - ErrInvalidGroup.
func (m *Model) Select(g Group) (*matrix.Dense, float64, error) {
	d, off, err := m.pick(g)
	if err != nil {
		return nil, 0, modelErrorf(opSelect, err)
	}

	return d.CloneDense(), off, nil
}

// Offset returns the scalar offset of g.
func (m *Model) Offset(g Group) (float64, error) {
	_, off, err := m.pick(g)
	if err != nil {
		return 0, modelErrorf(opOffset, err)
	}

	return off, nil
}

// Dense returns the matrix of g as a list of rows, as stored (layout
// included), for visualisation collaborators.
func (m *Model) Dense(g Group) ([][]float64, error) {
	d, _, err := m.pick(g)
	if err != nil {
		return nil, modelErrorf(opDense, err)
	}

	return d.RawRows(), nil
}

// ApplyLayout rewrites every stored matrix in layout l. Coefficients are
// folded into the upper triangle first, so the energy is unchanged.
//
// Errors:
//   - matrix.ErrInvalidLayout.
func (m *Model) ApplyLayout(l matrix.Layout) error {
	if err := l.Validate(); err != nil {
		return modelErrorf(opApplyLayout, err)
	}
	prev := m.layout
	m.layout = l
	for _, d := range []**matrix.Dense{&m.cost, &m.penalty, &m.combined} {
		up, err := matrix.FoldUpper(*d)
		if err == nil {
			*d, err = m.arrange(up)
		}
		if err != nil {
			m.layout = prev
			return modelErrorf(opApplyLayout, err)
		}
	}

	return nil
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := *m
	c.cost = m.cost.CloneDense()
	c.penalty = m.penalty.CloneDense()
	c.combined = m.combined.CloneDense()

	return &c
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
