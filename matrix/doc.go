// Package matrix provides the dense matrix value type and the pure
// linear-algebra engine used across matcalc.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked access and
//     deep cloning for immutability guarantees in computation pipelines.
//   - Pure kernels: Norm (Frobenius), Transpose, Mul, Scale.
//   - First-principles kernels: Determinant (recursive cofactor expansion),
//     Cofactors, Adjoint and Inverse — no pivoting, no factorization.
//
// All operations allocate fresh outputs and never mutate their inputs, so
// independent top-level computations are trivially safe to run in parallel.
// Determinant and Cofactors additionally accept WithParallel to fan the
// independent expansion terms out across workers without changing results.
//
// Cofactor expansion is exponential in the matrix order by design; this
// package trades asymptotic speed for simplicity and exactness of the
// classical definitions.
//
// See the examples in this package and matfile for usage patterns.
package matrix
