// Package tsp encodes the travelling salesman problem as a QUBO/Ising model.
//
// A tour over n locations is an n-step closed walk; the binary variable
// x(t,u) = 1 visits location u at step t. Variables are flattened row-major:
// Index(t,u,n) = t·n + u, n² in total.
//
// Energy:
//
//	E(x) = Σ_t Σ_{u,v} D[u,v]·x(t,u)·x(t+1 mod n, v)
//	     + α·Σ_t (Σ_u x(t,u) − 1)²        (one location per step)
//	     + α·Σ_u (Σ_t x(t,u) − 1)²        (every location visited once)
//
// The wrap-around term from the last step back to step 0 closes the tour,
// so a feasible assignment has energy equal to its tour length. Every
// rotation of a tour is a distinct assignment of equal energy; Rotate
// brings decoded tours to a common start.
//
// Complexity:
//
//	– Time:  O(n³) accumulation, split across Workers goroutines by step.
//	– Space: O(n⁴) for the n²×n² coefficient matrices.
//
// Example usage:
//
//	m, err := tsp.Build(D, encoder.WithAlpha(100), encoder.WithRepresentation(model.Ising))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lin, quad, _ := m.LinearQuadratic(model.All)
package tsp
