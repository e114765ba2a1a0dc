// SPDX-License-Identifier: MIT

package model

import "errors"

// Sentinel errors returned by the model package.
var (
	// ErrInvalidRepresentation indicates a representation other than Ising or QUBO.
	ErrInvalidRepresentation = errors.New("model: invalid representation, want 'ISING' or 'QUBO'")

	// ErrInvalidGroup indicates a group tag other than All, Cost or Penalty.
	ErrInvalidGroup = errors.New("model: invalid group, want 'all', 'cost' or 'pen'")

	// ErrVariableCount indicates a non-positive variable count or a matrix of
	// the wrong order for this model.
	ErrVariableCount = errors.New("model: variable count must be positive and match the model")

	// ErrIndexOutOfRange indicates a variable index outside [0, n).
	ErrIndexOutOfRange = errors.New("model: variable index out of range")

	// ErrAssignmentLength indicates an assignment whose length differs from n.
	ErrAssignmentLength = errors.New("model: assignment length does not match variable count")

	// ErrAssignmentDomain indicates an assignment value outside {-1,+1} (Ising) or {0,1} (QUBO).
	ErrAssignmentDomain = errors.New("model: assignment value outside the representation domain")

	// ErrNilModel indicates that a nil *Model was supplied.
	ErrNilModel = errors.New("model: model is nil")
)
