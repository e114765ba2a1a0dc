// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/qubox/matrix"

// Options configures a Model at construction.
//
// Layout – storage of off-diagonal pairs (default matrix.Upper).
type Options struct {
	Layout matrix.Layout
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Layout: matrix.Upper}
}

// WithLayout sets the storage layout. An unknown layout is reported by New.
func WithLayout(l matrix.Layout) Option {
	return func(o *Options) {
		o.Layout = l
	}
}
