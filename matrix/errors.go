// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions;
// panics are reserved for programmer errors (invalid option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the kernel boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix argument was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Mul where a.Cols != b.Rows, or a square-only kernel (Determinant,
	// Cofactors, Adjoint, Inverse) given a rectangular input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows indicates that a [][]float64 literal has rows of
	// differing lengths and cannot form a rectangular matrix.
	ErrRaggedRows = errors.New("matrix: rows have differing lengths")

	// ErrSingular is returned when Inverse is requested for a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")
)
