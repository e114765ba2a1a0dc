// SPDX-License-Identifier: MIT

package encoder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

// Default option values.
const (
	DefaultAlpha   = 1.0
	DefaultWorkers = 1
)

// Options configures an encoder run.
//
// Alpha          – one-hot penalty weight. Must be finite and > 0.
// Representation – representation of the returned model.
// Layout         – layout of the returned model.
// Workers        – bound on goroutines accumulating cost rows. Must be ≥ 1.
type Options struct {
	Alpha          float64
	Representation model.Representation
	Layout         matrix.Layout
	Workers        int
}

// Option represents a functional option for configuring an encoder.
type Option func(*Options)

// DefaultOptions returns Alpha=1, QUBO, Upper, one worker.
func DefaultOptions() Options {
	return Options{
		Alpha:          DefaultAlpha,
		Representation: model.QUBO,
		Layout:         matrix.Upper,
		Workers:        DefaultWorkers,
	}
}

// WithAlpha sets the one-hot penalty weight.
// Panics if alpha is NaN, ±Inf or not positive.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		panic(fmt.Sprintf("encoder: WithAlpha(%v): %v", alpha, ErrBadAlpha))
	}

	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithRepresentation selects QUBO or Ising output.
func WithRepresentation(rep model.Representation) Option {
	return func(o *Options) {
		o.Representation = rep
	}
}

// WithLayout selects the storage layout of the output.
func WithLayout(l matrix.Layout) Option {
	return func(o *Options) {
		o.Layout = l
	}
}

// WithWorkers bounds the goroutines used for cost accumulation.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(fmt.Sprintf("encoder: WithWorkers(%d): %v", workers, ErrBadWorkers))
	}

	return func(o *Options) {
		o.Workers = workers
	}
}

// Resolve applies opts over DefaultOptions and validates the result.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// Validate checks every field.
//
// Errors:
//   - ErrBadAlpha, ErrBadWorkers, model.ErrInvalidRepresentation, matrix.ErrInvalidLayout.
func (o Options) Validate() error {
	if math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) || o.Alpha <= 0 {
		return fmt.Errorf("alpha=%v: %w", o.Alpha, ErrBadAlpha)
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", o.Workers, ErrBadWorkers)
	}
	if err := o.Representation.Validate(); err != nil {
		return err
	}

	return o.Layout.Validate()
}
