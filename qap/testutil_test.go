// SPDX-License-Identifier: MIT

package qap_test

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

// Instance with asymmetric flow and non-zero diagonals.
var (
	flow3 = [][]float64{
		{0, 3, 1},
		{2, 0, 4},
		{1, 0, 0},
	}
	dist3 = [][]float64{
		{1, 5, 2},
		{5, 0, 3},
		{2, 3, 0},
	}
)
