// Package matrix offers the dense storage and coefficient algebra behind
// quadratic energy models.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked, finite-only writes.
//   - Triangular helpers (Upper, StrictUpper, Diagonal) and FoldUpper, the
//     canonical triangularisation that merges each mirrored pair into (i,j), i<j.
//   - Layout (Upper / Symmetric) and SymmetrizeLayout.
//   - QUBOToIsing / IsingToQUBO with their offset companions.
//
// All exported kernels return sentinel errors from errors.go and never panic
// on user input.
package matrix
