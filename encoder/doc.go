// Package encoder holds what the problem encoders share: their options,
// instance validation, the parallel row scatter that fills raw cost
// matrices, and the finalisation step that turns a filled model into the
// requested representation and layout.
//
// Options:
//
//	– Alpha:          penalty weight of every one-hot constraint (> 0, default 1).
//	– Representation: model.QUBO (default) or model.Ising.
//	– Layout:         matrix.Upper (default) or matrix.Symmetric.
//	– Workers:        goroutines used to accumulate cost rows (default 1).
//
// Errors (sentinel):
//
//	– ErrEmptyInstance  if an instance matrix is nil or has no rows.
//	– ErrNonSquare      if an instance matrix is ragged or not square.
//	– ErrShapeMismatch  if two instance matrices have different orders.
//	– ErrBadAlpha       if Alpha is not a finite positive number.
//	– ErrBadWorkers     if Workers < 1.
package encoder
