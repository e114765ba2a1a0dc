// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AddAt return errors instead of panicking.
//   - Keep coefficient accumulation deterministic (fixed loop orders, no map iteration).
//   - Reject NaN/Inf on every write; a coefficient matrix must stay finite.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AddAt: O(1); Clone: O(r*c); RawRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxAddAt = "AddAt" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through errors.Is.
//
// Complexity: Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom copies a list-of-lists into a fresh Dense.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and rows whose length
//     differs from the first row (ErrRaggedRows).
//   - Stage 2: copy row by row, rejecting NaN/±Inf (ErrNaNInf).
//
// Inputs:
//   - rows: caller-owned values; never retained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ { // fixed row order
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if isNonFinite(v) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AddAt accumulates v into (row, col): m[row,col] += v.
// This is the write used by every coefficient-accumulation loop.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when v or the resulting sum is non-finite.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense) AddAt(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	sum := m.data[off] + v
	if isNonFinite(v) || isNonFinite(sum) {
		return denseErrorf(ctxAddAt, row, col, ErrNaNInf)
	}
	m.data[off] = sum

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside the package.
func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// CloneDense returns a typed deep copy of m.
// Complexity: O(r*c).
func (m *Dense) CloneDense() *Dense { return m.clone() }

// Flat returns a copy of the row-major backing buffer (len == r*c).
// Suitable for handing the coefficients to other numeric libraries.
// Complexity: O(r*c).
func (m *Dense) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// RawRows returns the matrix as a freshly allocated list-of-lists.
// This is the dense dump consumed by visualisation collaborators.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// IsZero reports whether every entry is exactly zero.
// Complexity: O(r*c).
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
