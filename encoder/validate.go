// SPDX-License-Identifier: MIT
// Package: encoder
//
// Instance validation shared by the encoders. Problem matrices arrive either
// as a list of rows or as a matrix.Matrix; both are checked for emptiness,
// squareness and finiteness and returned as a private *matrix.Dense copy.

package encoder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qubox/matrix"
)

// SquareOrder returns n for an n×n list of rows.
//
// Errors (wrapped with name):
//   - ErrEmptyInstance, ErrNonSquare, matrix.ErrNaNInf.
//
// Complexity: O(n²).
func SquareOrder(name string, rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%s: %w", name, ErrEmptyInstance)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return 0, fmt.Errorf("%s: row %d has %d columns, want %d: %w", name, i, len(row), n, ErrNonSquare)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%s: (%d,%d): %w", name, i, j, matrix.ErrNaNInf)
			}
		}
	}

	return n, nil
}

// Instance validates rows and returns them as a Dense copy.
func Instance(name string, rows [][]float64) (*matrix.Dense, error) {
	if _, err := SquareOrder(name, rows); err != nil {
		return nil, err
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return d, nil
}

// InstanceMatrix validates m and returns a Dense copy of it.
//
// Errors (wrapped with name):
//   - ErrEmptyInstance (nil m), ErrNonSquare, matrix.ErrNaNInf.
func InstanceMatrix(name string, m matrix.Matrix) (*matrix.Dense, error) {
	if matrix.ValidateNotNil(m) != nil || m.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInstance)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", name, m.Rows(), m.Cols(), ErrNonSquare)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	d, err := matrix.FromMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return d.CloneDense(), nil
}

// SameOrder requires a and b to share their order.
func SameOrder(a, b *matrix.Dense) error {
	if a.Rows() != b.Rows() {
		return fmt.Errorf("%d vs %d: %w", a.Rows(), b.Rows(), ErrShapeMismatch)
	}

	return nil
}
