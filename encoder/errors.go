// SPDX-License-Identifier: MIT

package encoder

import "errors"

// Sentinel errors returned by the encoders.
var (
	// ErrEmptyInstance indicates a nil or zero-row instance matrix.
	ErrEmptyInstance = errors.New("encoder: instance matrix is empty")

	// ErrNonSquare indicates a ragged or rectangular instance matrix.
	ErrNonSquare = errors.New("encoder: instance matrix must be square")

	// ErrShapeMismatch indicates instance matrices of different orders.
	ErrShapeMismatch = errors.New("encoder: instance matrices differ in order")

	// ErrBadAlpha indicates a penalty weight that is not finite and positive.
	ErrBadAlpha = errors.New("encoder: alpha must be finite and positive")

	// ErrInfeasible indicates an assignment that violates a one-hot constraint.
	ErrInfeasible = errors.New("encoder: assignment violates a one-hot constraint")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("encoder: workers must be at least 1")
)
