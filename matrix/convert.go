// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convert coefficient matrices between the QUBO (bits x∈{0,1}) and the
//     Ising (spins s∈{-1,+1}) representations through x = (s+1)/2.
//   - Both directions read the upper triangle only (Upper layout); callers
//     holding a Symmetric-layout matrix fold it first (FoldUpper).
//
// Numeric policy:
//   - QUBO → Ising is exact in float64 for coefficients that are multiples of 1/4.
//   - Ising → QUBO truncates every produced entry toward zero, so its output is
//     integral. Round-tripping Ising → QUBO → Ising is exact for quarter-multiple
//     inputs; QUBO → Ising → QUBO loses the fractional part otherwise.

package matrix

import "math"

const (
	opQUBOToIsing = "QUBOToIsing"
	opIsingToQUBO = "IsingToQUBO"
)

// QUBOToIsing converts an upper-triangular QUBO matrix Q to Ising form:
//
//	ising[i][j] = Q[i][j] / 4                                         (i<j)
//	ising[i][i] = Σ_{j>i} ising[i][j] + Σ_{k<i} ising[k][i] + Q[i][i] / 2
//
// The constant produced by the substitution is returned by QUBOToIsingOffset.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func QUBOToIsing(q Matrix) (*Dense, error) {
	if err := ValidateSquare(q); err != nil {
		return nil, matrixErrorf(opQUBOToIsing, err)
	}
	d, err := FromMatrix(q)
	if err != nil {
		return nil, matrixErrorf(opQUBOToIsing, err)
	}
	n := d.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opQUBOToIsing, err)
	}

	var i, j, k int
	var sum, c float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = i + 1; j < n; j++ { // couplings of row i
			c = 0.25 * d.data[i*n+j]
			out.data[i*n+j] = c
			sum += c
		}
		for k = 0; k < i; k++ { // couplings reaching i from above
			sum += 0.25 * d.data[k*n+i]
		}
		out.data[i*n+i] = sum + 0.5*d.data[i*n+i]
	}

	return out, nil
}

// QUBOToIsingOffset returns the constant gained when Q is rewritten in spins:
//
//	Σ_{i<j} Q[i][j] / 4 + Σ_i Q[i][i] / 2
//
// so that xᵀ·Q·x == s·J·s + h·s + offset with s = 2x-1.
// Complexity: O(n^2).
func QUBOToIsingOffset(q Matrix) (float64, error) {
	if err := ValidateSquare(q); err != nil {
		return 0, matrixErrorf(opQUBOToIsing, err)
	}
	d, err := FromMatrix(q)
	if err != nil {
		return 0, matrixErrorf(opQUBOToIsing, err)
	}

	n := d.r
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		off += 0.5 * d.data[i*n+i]
		for j = i + 1; j < n; j++ {
			off += 0.25 * d.data[i*n+j]
		}
	}

	return off, nil
}

// IsingToQUBO converts an upper-triangular Ising matrix H to QUBO form:
//
//	qubo[i][j] = trunc(4 * H[i][j])                                          (i<j)
//	qubo[i][i] = trunc(2*H[i][i] - 2*Σ_{j>i} H[i][j] - 2*Σ_{k<i} H[k][i])
//
// Every entry of the result is integral.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func IsingToQUBO(h Matrix) (*Dense, error) {
	if err := ValidateSquare(h); err != nil {
		return nil, matrixErrorf(opIsingToQUBO, err)
	}
	d, err := FromMatrix(h)
	if err != nil {
		return nil, matrixErrorf(opIsingToQUBO, err)
	}
	n := d.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIsingToQUBO, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = i + 1; j < n; j++ {
			out.data[i*n+j] = math.Trunc(4 * d.data[i*n+j])
			sum += d.data[i*n+j]
		}
		for k = 0; k < i; k++ {
			sum += d.data[k*n+i]
		}
		out.data[i*n+i] = math.Trunc(2*d.data[i*n+i] - 2*sum)
	}

	return out, nil
}

// IsingToQUBOOffset returns the constant gained when H is rewritten in bits:
//
//	Σ_{i<j} H[i][j] - Σ_i H[i][i]
//
// Complexity: O(n^2).
func IsingToQUBOOffset(h Matrix) (float64, error) {
	if err := ValidateSquare(h); err != nil {
		return 0, matrixErrorf(opIsingToQUBO, err)
	}
	d, err := FromMatrix(h)
	if err != nil {
		return 0, matrixErrorf(opIsingToQUBO, err)
	}

	n := d.r
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		off -= d.data[i*n+i]
		for j = i + 1; j < n; j++ {
			off += d.data[i*n+j]
		}
	}

	return off, nil
}
