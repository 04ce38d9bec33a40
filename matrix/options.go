// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the cofactor-expansion
// kernels. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the worker count used when no WithParallel option is
	// given: 1, i.e. fully sequential expansion. Parallel fan-out is opt-in
	// because for small orders the goroutine overhead dwarfs the arithmetic.
	DefaultWorkers = 1

	// parallelThreshold is the smallest matrix order worth fanning out.
	// Below it even a requested parallel run stays sequential: a 3×3
	// expansion finishes faster than a single goroutine handoff.
	parallelThreshold = 4
)

// options carries the resolved configuration for Determinant/Cofactors/
// Adjoint/Inverse. Fields are unexported; construct via Option values.
type options struct {
	workers int // ≥ 1; 1 means sequential
}

// Option mutates the internal options struct. Options are applied in order;
// the last value wins.
type Option func(*options)

// WithParallel fans the independent cofactor-expansion terms out across up
// to workers goroutines. Each expansion term owns its own minor buffer, so
// no synchronization beyond the final ordered sum is needed and results are
// bit-identical to the sequential path.
//
// workers must be ≥ 1; any other value is a programmer error and panics.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic("matrix: WithParallel requires workers >= 1")
	}

	return func(o *options) { o.workers = workers }
}

// gatherOptions resolves defaults and applies the given options in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// parallelFor reports whether the resolved options ask for a parallel run
// over a problem of order n.
func (o options) parallelFor(n int) bool {
	return o.workers > 1 && n >= parallelThreshold
}
