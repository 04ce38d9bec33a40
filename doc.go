// Package matcalc is a small toolkit for computing classical linear-algebra
// quantities over matrices stored in a line-oriented text format.
//
// 🚀 What does matcalc do?
//
//	Given a matrix file of the form
//
//	    matrix 3 3      # header: rows and columns
//	    1 2 3
//	    4 5 6
//	    7 8 10          # trailing comments are allowed
//	    end
//
//	it computes:
//		• Frobenius norm
//		• Transpose
//		• Matrix product
//		• Determinant (recursive cofactor expansion, from first principles)
//		• Cofactor matrix & adjoint
//		• Inverse (adjoint / determinant)
//
// ✨ Why choose matcalc?
//
//   - Precise diagnostics – every malformed file is reported with its exact
//     line number and offending token, never a generic "parse error"
//   - Pure operations – no input matrix is ever mutated; every result is a
//     freshly allocated value
//   - Optional parallelism – independent cofactor-expansion terms can be
//     fanned out across workers without changing results
//
// Everything is organized under three packages:
//
//	matrix/  — the Matrix value type and the pure algebra engine
//	matfile/ — reader and writer for the matrix text format
//	cmd/     — the matcalc command-line calculator
package matcalc
