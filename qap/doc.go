// Package qap encodes the quadratic assignment problem as a QUBO/Ising model.
//
// Given n facilities with pairwise flow W and n locations with pairwise
// distance D, the binary variable x(i,k) = 1 places facility i at location k.
// Variables are flattened row-major: Index(i,k,n) = i·n + k, n² in total.
//
// Energy:
//
//	E(x) = Σ_{i,j,k,l} W[i,j]·D[k,l]·x(i,k)·x(j,l)
//	     + α·Σ_i (Σ_k x(i,k) − 1)²        (every facility placed once)
//	     + α·Σ_k (Σ_i x(i,k) − 1)²        (every location used once)
//
// A feasible assignment carries no penalty, so its energy equals the
// assignment cost Σ_{i,j} W[i,j]·D[perm[i],perm[j]]. For α larger than the
// spread of the cost term the minimum energy is attained on a permutation.
//
// Complexity:
//
//	– Time:  O(n⁴) accumulation, split across Workers goroutines by facility.
//	– Space: O(n⁴) for the n²×n² coefficient matrices.
//
// Example usage:
//
//	m, err := qap.Build(W, D, encoder.WithAlpha(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	triples, _ := m.Triples(model.All)
package qap
