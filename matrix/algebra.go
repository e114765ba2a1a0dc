// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and triangular kernels used by the
// model layer: addition, scaling, transpose, triangular extraction, folding
// of the lower triangle into the upper one, and layout symmetrisation.
//
// Purpose:
//   - Every kernel validates through validators.go and wraps failures with matrixErrorf.
//   - Inputs are never mutated; every result is a freshly allocated *Dense.
//   - Non-Dense inputs are materialised once through FromMatrix; the loops then
//     run on the flat row-major buffer only.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opUpper       = "Upper"
	opStrictUpper = "StrictUpper"
	opDiagonal    = "Diagonal"
	opFoldUpper   = "FoldUpper"
	opSymmetrize  = "SymmetrizeLayout"
	opFromMatrix  = "FromMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FromMatrix returns m itself when it already is a *Dense, otherwise a Dense
// copy read through At in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf, and any At failure.
//
// Complexity:
//   - O(1) for *Dense; O(r*c) otherwise.
func FromMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}

	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFromMatrix, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromMatrix, err)
			}
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := FromMatrix(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := FromMatrix(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Single flat loop 0..n-1.
	for idx := range res.data {
		res.data[idx] = da.data[idx] + db.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range d.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Transpose returns mᵀ.
// data[i*cols + j] → res.data[j*rows + i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < d.r; i++ {
		baseSrc = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[baseSrc+j]
		}
	}

	return res, nil
}

// Upper returns the upper triangle of a square m (entries with i<=j kept).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Upper(m Matrix) (*Dense, error) {
	return triangle(opUpper, m, 0)
}

// StrictUpper returns the strict upper triangle of a square m (i<j kept, diagonal zero).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func StrictUpper(m Matrix) (*Dense, error) {
	return triangle(opStrictUpper, m, 1)
}

// triangle keeps entries with j-i >= k.
func triangle(tag string, m Matrix, k int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + k; j < n; j++ {
			res.data[i*n+j] = d.data[i*n+j]
		}
	}

	return res, nil
}

// Diagonal returns the main diagonal of a square m.
// Complexity: Time O(n), Space O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	out := make([]float64, d.r)
	for i := range out {
		out[i] = d.data[i*d.c+i]
	}

	return out, nil
}

// FoldUpper moves every lower-triangle coefficient onto its upper mirror:
//
//	out[i][j] = m[i][j] + m[j][i]   (i<j)
//	out[i][i] = m[i][i]
//	out[j][i] = 0                   (i<j)
//
// The diagonal is kept exactly once. For a matrix already in Upper layout this
// is an identity copy; for a Symmetric-layout matrix it recombines the halves.
// The quadratic form is preserved: x·m·xᵀ == x·FoldUpper(m)·xᵀ for every x.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func FoldUpper(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFoldUpper, err)
	}
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opFoldUpper, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opFoldUpper, err)
	}

	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		res.data[i*n+i] = d.data[i*n+i]
		for j = i + 1; j < n; j++ {
			res.data[i*n+j] = d.data[i*n+j] + d.data[j*n+i]
		}
	}

	return res, nil
}

// SymmetrizeLayout re-expresses m for the requested layout.
//
//   - Symmetric: (upper(m) + upper(m)ᵀ) / 2. Off-diagonal pairs become mirrored
//     halves; the diagonal is kept unchanged.
//   - Upper:     m is returned unchanged (as a copy).
//
// Only the upper triangle of m is read in Symmetric mode, so callers holding
// coefficients below the diagonal must FoldUpper first.
//
// Errors:
//   - ErrInvalidLayout, ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func SymmetrizeLayout(m Matrix, layout Layout) (*Dense, error) {
	if err := layout.Validate(); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	d, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	if layout == Upper {
		return d.clone(), nil
	}

	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := d.r
	var i, j int
	var half float64
	for i = 0; i < n; i++ {
		res.data[i*n+i] = d.data[i*n+i] // (u + uᵀ)/2 on the diagonal is u[i][i]
		for j = i + 1; j < n; j++ {
			half = d.data[i*n+j] / 2
			res.data[i*n+j] = half
			res.data[j*n+i] = half
		}
	}

	return res, nil
}
