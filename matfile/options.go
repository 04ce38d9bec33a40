// SPDX-License-Identifier: MIT

// Package matfile: functional configuration for the reader limits.
// Same contract as the matrix package options: documented defaults,
// WithX constructors that panic on nonsensical values (programmer error),
// and an internal gatherOptions helper.
package matfile

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDimension caps the declared rows and columns of a matrix
	// file. Declarations above it are rejected as invalid format.
	DefaultMaxDimension = 2000

	// DefaultMaxLineLength caps a single physical line, in bytes. Longer
	// lines fail the read with ErrIO rather than being truncated.
	DefaultMaxLineLength = 40000
)

// options carries the resolved reader configuration.
type options struct {
	maxDim     int // inclusive upper bound on declared rows/cols
	maxLineLen int // inclusive upper bound on a physical line, bytes
}

// Option mutates the internal options struct. Options are applied in order;
// the last value wins.
type Option func(*options)

// WithMaxDimension overrides the maximum accepted rows/columns declaration.
// n must be ≥ 1; any other value is a programmer error and panics.
func WithMaxDimension(n int) Option {
	if n < 1 {
		panic("matfile: WithMaxDimension requires n >= 1")
	}

	return func(o *options) { o.maxDim = n }
}

// WithMaxLineLength overrides the maximum accepted physical line length.
// n must be ≥ 1; any other value is a programmer error and panics.
func WithMaxLineLength(n int) Option {
	if n < 1 {
		panic("matfile: WithMaxLineLength requires n >= 1")
	}

	return func(o *options) { o.maxLineLen = n }
}

// gatherOptions resolves defaults and applies the given options in order.
func gatherOptions(opts ...Option) options {
	o := options{maxDim: DefaultMaxDimension, maxLineLen: DefaultMaxLineLength}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
