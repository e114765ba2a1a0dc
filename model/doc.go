// Package model holds a quadratic energy model over n variables in one of two
// representations and the bookkeeping every problem encoding shares.
//
// A Model carries three coefficient matrices and three scalar offsets:
//
//	– cost     / costOffset:     the problem objective.
//	– penalty  / penaltyOffset:  soft constraints as quadratic penalties.
//	– combined / combinedOffset: cost + penalty, populated by Merge.
//
// Representation:
//
//	– QUBO:  variables x ∈ {0,1};  E(x) = xᵀ·M·x + offset.
//	– Ising: variables s ∈ {-1,+1}; E(s) = s·strictUpper(M)·sᵀ + s·diag(M) + offset.
//
// In both representations the diagonal holds the linear terms and the upper
// triangle the pairwise terms. Layout (matrix.Upper or matrix.Symmetric)
// governs whether a pair is stored once at (i,j), i<j, or as mirrored halves.
//
// Lifecycle:
//
//  1. New allocates all-zero matrices of a fixed order n.
//  2. AddCost / AddPenalty / AddOneHot / offsets mutate cost and penalty.
//  3. Merge populates combined. It is explicit; mutation marks the model
//     unmerged and combined stays stale until the next Merge.
//  4. Triples, LinearQuadratic, Terms, Energy and Dense read a Group.
//
// Complexity:
//
//	– Memory: O(n²) per matrix.
//	– Extraction and energy: O(n²).
//
// Errors (sentinel):
//
//	– ErrInvalidRepresentation, ErrInvalidGroup, ErrVariableCount
//	– ErrAssignmentLength, ErrAssignmentDomain, ErrIndexOutOfRange
//	– matrix.ErrInvalidLayout, matrix.ErrNaNInf from the matrix layer
//
// Example usage:
//
//	m, _ := model.New(model.QUBO, 3)
//	_ = m.AddOneHot([]int{0, 1, 2}, 5)
//	_ = m.AddCost(0, 1, 2)
//	m.Merge()
//	e, _ := m.Energy([]int{1, 0, 0}, model.All) // 0
package model
