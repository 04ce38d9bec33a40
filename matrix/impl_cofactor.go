// SPDX-License-Identifier: MIT
// Package matrix: first-principles kernels built on cofactor expansion —
// Determinant, Cofactors, Adjoint and Inverse.
//
// Purpose:
//   - Derive determinant, cofactor matrix, adjoint and inverse exactly as
//     classically defined, with no pivoting, no factorization and no
//     memoization. Expansion is exponential in the matrix order by design.
//
// Notes:
//   - Every recursive call owns a freshly allocated minor buffer; nothing
//     aliases the parent matrix, which is what makes the optional parallel
//     fan-out safe without any locking.
//   - All kernels validate via ValidateSquareNonNil and wrap sentinels with
//     matrixErrorf, so callers match with errors.Is.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// densify returns m as a *Dense for flat-indexed recursion. A *Dense input
// is used as-is (kernels here only read it); any other implementation is
// copied element by element.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func densify(m Matrix) (*Dense, error) {
	if dm, ok := m.(*Dense); ok {
		return dm, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// minorOf builds the (n-1)×(n-1) minor of a square n×n Dense by deleting
// row and col. The result is a fresh buffer with no aliasing to src.
// Caller guarantees src is square with n ≥ 2 and row/col in range.
// Complexity: O(n²) time and memory per call.
func minorOf(src *Dense, row, col int) *Dense {
	n := src.r
	sub := &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}

	var i, j, k int // k walks the minor's flat storage
	for i = 0; i < n; i++ {
		if i == row {
			continue // deleted row
		}
		base := i * n
		for j = 0; j < n; j++ {
			if j == col {
				continue // deleted column
			}
			sub.data[k] = src.data[base+j]
			k++
		}
	}

	return sub
}

// detDense is the sequential recursive determinant over *Dense.
// Base cases: 1×1 → the single element; 2×2 → ad−bc. For n > 2 the
// expansion runs along row 0 in ascending column order, which fixes the
// floating-point accumulation order for reproducibility.
// Complexity: O(n!) time — intentional; see package doc.
func detDense(m *Dense) float64 {
	n := m.r
	if n == 1 {
		return m.data[0]
	}
	if n == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	det := ZeroSum
	var c int
	var term float64
	for c = 0; c < n; c++ {
		term = expansionTerm(m, c)
		if c%2 == 1 {
			det -= term
		} else {
			det += term
		}
	}

	return det
}

// expansionTerm computes the unsigned term A[0,c]·det(minor(0,c)) of the
// first-row expansion. A zero coefficient short-circuits the recursion but
// still contributes an explicit 0 to the sum, keeping the sequential and
// parallel accumulations identical.
func expansionTerm(m *Dense, c int) float64 {
	lead := m.data[c]
	if lead == 0 {
		return 0
	}

	return lead * detDense(minorOf(m, 0, c))
}

// Determinant computes det(A) for a square matrix via recursive cofactor
// expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy non-Dense inputs into a Dense.
//   - Stage 2: Base cases 1×1 and 2×2 resolve directly. For n > 2, expand
//     along row 0: Σ_c (−1)^c · A[0,c] · det(minor(0,c)).
//   - Stage 3: With WithParallel, the top-level expansion terms fan out
//     across an errgroup (each term owns its minor); the collected terms
//     are summed in ascending column order, so the result matches the
//     sequential path exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Determinism:
//   - Fixed expansion and summation order regardless of worker count.
//
// Complexity:
//   - Time O(n!), Space O(n²) per active recursion level.
//
// AI-Hints:
//   - This kernel is exact but exponential; beyond n≈10 expect real wall
//     time. Parallelism divides the constant, not the factorial.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// Densify for flat-indexed recursion
	d, err := densify(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	o := gatherOptions(opts...)
	n := d.r

	// Sequential path (also covers the 1×1 and 2×2 base cases).
	if !o.parallelFor(n) {
		return detDense(d), nil
	}

	// Parallel path: one goroutine per top-level expansion term. Terms land
	// in an indexed slice; no two goroutines share a minor or a slot.
	terms := make([]float64, n)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for c := 0; c < n; c++ {
		c := c
		g.Go(func() error {
			terms[c] = expansionTerm(d, c)

			return nil
		})
	}
	// Term closures never fail; Wait only joins the workers.
	_ = g.Wait()

	// Ordered sum: ascending column order, same as the sequential loop.
	det := ZeroSum
	for c := 0; c < n; c++ {
		if c%2 == 1 {
			det -= terms[c]
		} else {
			det += terms[c]
		}
	}

	return det, nil
}

// Cofactors computes the cofactor matrix of a square A: entry (i,j) is
// (−1)^(i+j) times the determinant of the minor formed by deleting row i
// and column j.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); densify.
//   - Stage 2: For each (i,j) in fixed i→j order, build a fresh minor and
//     recurse. For a 1×1 input the minor is empty and its determinant is 1
//     by the empty-product convention, giving [[1]].
//   - Stage 3: With WithParallel, rows fan out across an errgroup; each row
//     writes a disjoint slice of the result, so no locking is needed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Cofactors(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	// Densify for flat-indexed recursion
	d, err := densify(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := d.r

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	// Degenerate 1×1: the deleted-row/column minor is empty; det(∅) = 1.
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	o := gatherOptions(opts...)

	// cofactorRow fills row i of res; rows touch disjoint storage.
	cofactorRow := func(i int) {
		var j int
		var cof float64
		base := i * n
		for j = 0; j < n; j++ {
			cof = detDense(minorOf(d, i, j))
			if (i+j)%2 == 1 {
				cof = -cof
			}
			res.data[base+j] = cof
		}
	}

	if !o.parallelFor(n) {
		for i := 0; i < n; i++ {
			cofactorRow(i)
		}

		return res, nil
	}

	// Parallel path: one goroutine per row of cofactors.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			cofactorRow(i)

			return nil
		})
	}
	_ = g.Wait()

	return res, nil
}

// Adjoint computes the classical adjoint (adjugate) of a square A: the
// transpose of its cofactor matrix.
//
// Convention: for a 1×1 input the adjoint is defined as the 1×1 matrix
// [1] — not the cofactor-based value — so that A·adj(A) = det(A)·I holds
// for scalars. This matches the long-standing behavior of the calculator
// and is deliberate; do not "fix" it to the cofactor definition.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Adjoint(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	// 1×1 short-circuit: unit value by convention (see above).
	if m.Rows() == 1 {
		res, err := NewDense(1, 1)
		if err != nil {
			return nil, matrixErrorf(opAdjoint, err)
		}
		res.data[0] = 1

		return res, nil
	}

	// General case: transpose of the cofactor matrix.
	cof, err := Cofactors(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adj, nil
}

// Inverse computes A⁻¹ for a square matrix with nonzero determinant, as
// adjoint(A) with every element divided by det(A).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: Compute det(A) first; exactly 0 fails with ErrSingular
//     before any division can happen.
//   - Stage 3: Inverse = Scale(Adjoint(A), 1/det).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (det == 0).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Determinant gate: a zero determinant means no inverse exists.
	det, err := Determinant(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// adj(A) / det(A)
	adj, err := Adjoint(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
