// SPDX-License-Identifier: MIT

package encoder

import "fmt"

// DecodeGrid reads an n×n one-hot grid (variable r·n + c) and returns
// perm with perm[r] = c. A variable is set when its value is 1; 0 and -1
// both read as unset, so bit and spin samples decode alike.
//
// Errors:
//   - ErrInfeasible when len(x) != n², a value is outside {-1,0,1}, a row
//     does not hold exactly one set variable, or a column is used twice.
//
// Complexity: O(n²).
func DecodeGrid(x []int, n int) ([]int, error) {
	if n <= 0 || len(x) != n*n {
		return nil, fmt.Errorf("len %d for n=%d: %w", len(x), n, ErrInfeasible)
	}
	perm := make([]int, n)
	used := make([]bool, n)
	var r, c int
	for r = 0; r < n; r++ {
		perm[r] = -1
		for c = 0; c < n; c++ {
			switch x[r*n+c] {
			case 0, -1:
			case 1:
				if perm[r] >= 0 {
					return nil, fmt.Errorf("row %d has several set variables: %w", r, ErrInfeasible)
				}
				perm[r] = c
			default:
				return nil, fmt.Errorf("x[%d]=%d: %w", r*n+c, x[r*n+c], ErrInfeasible)
			}
		}
		if perm[r] < 0 {
			return nil, fmt.Errorf("row %d has no set variable: %w", r, ErrInfeasible)
		}
		if used[perm[r]] {
			return nil, fmt.Errorf("column %d used twice: %w", perm[r], ErrInfeasible)
		}
		used[perm[r]] = true
	}

	return perm, nil
}

// EncodeGrid is the inverse of DecodeGrid for bits: x[r·n + perm[r]] = 1.
// It does not validate perm beyond index range.
func EncodeGrid(perm []int) []int {
	n := len(perm)
	x := make([]int, n*n)
	for r, c := range perm {
		if c >= 0 && c < n {
			x[r*n+c] = 1
		}
	}

	return x
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("len %d for n=%d: %w", len(perm), n, ErrInfeasible)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("perm[%d]=%d out of range: %w", i, v, ErrInfeasible)
		}
		if seen[v] {
			return fmt.Errorf("perm[%d]=%d repeated: %w", i, v, ErrInfeasible)
		}
		seen[v] = true
	}

	return nil
}
