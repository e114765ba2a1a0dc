// SPDX-License-Identifier: MIT

package tsp_test

// permutations returns every permutation of {0..n-1} in lexicographic order.
func permutations(n int) [][]int {
	var out [][]int
	perm := make([]int, n)
	used := make([]bool, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			out = append(out, append([]int(nil), perm...))
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[pos] = v
			rec(pos + 1)
			used[v] = false
		}
	}
	rec(0)

	return out
}

// bitStrings enumerates every {0,1}^n assignment.
func bitStrings(n int) [][]int {
	out := make([][]int, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		x := make([]int, n)
		for i := 0; i < n; i++ {
			x[i] = (mask >> i) & 1
		}
		out = append(out, x)
	}

	return out
}

// spins maps bits to spins through s = 2x-1.
func spins(x []int) []int {
	s := make([]int, len(x))
	for i, b := range x {
		s[i] = 2*b - 1
	}

	return s
}

// violations counts the rows and columns of an n×n grid not holding exactly one set bit.
func violations(x []int, n int) int {
	count := 0
	for r := 0; r < n; r++ {
		rowSum, colSum := 0, 0
		for c := 0; c < n; c++ {
			rowSum += x[r*n+c]
			colSum += x[c*n+r]
		}
		if rowSum != 1 {
			count++
		}
		if colSum != 1 {
			count++
		}
	}

	return count
}

// sum3 is the total of every entry of sym3, a bound on any tour length.
const sum3 = 34

var (
	sym3 = [][]float64{
		{0, 2, 9},
		{2, 0, 6},
		{9, 6, 0},
	}
	asym4 = [][]float64{
		{0, 3, 8, 1},
		{4, 0, 2, 7},
		{5, 9, 0, 2},
		{6, 1, 3, 0},
	}
)
