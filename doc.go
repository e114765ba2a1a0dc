// Package qubox formulates combinatorial problems as quadratic energy
// models over binary variables, ready for annealers and QUBO solvers.
//
// A model is E(x) = xᵀ·M·x + offset with x ∈ {0,1}ⁿ (QUBO) or x ∈ {-1,+1}ⁿ
// (Ising), kept as two coefficient groups, the objective and the constraint
// penalties, so that either can be inspected on its own.
//
// Packages:
//
//	matrix/   dense coefficient storage, triangular folding, layouts and
//	          the QUBO ↔ Ising transforms
//	model/    the two-group energy model: accumulation, merge, sparse
//	          extraction and energy evaluation
//	encoder/  options, instance validation and the one-hot grid shared by
//	          the permutation encoders
//	qap/      quadratic assignment: facility i at location k
//	tsp/      travelling salesman: location u at step t
//	bqm/      sparse binary quadratic models with JSON and YAML codecs
//	instance/ problem documents (YAML / JSON) and their encoding
//	config/   encoder settings from files and QUBOX_* variables
//	logger/   the shared zerolog logger
//
// Quick start:
//
//	m, err := tsp.Build(dist, encoder.WithAlpha(40))
//	if err != nil { ... }
//	e, err := m.Energy(sample, model.All)
package qubox
