package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleDeterminant demonstrates the recursive cofactor-expansion
// determinant on a 3×3 matrix.
func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})

	det, _ := matrix.Determinant(m)
	fmt.Println("det =", det)

	// Output:
	// det = -3
}

// ExampleNorm demonstrates the Frobenius norm on a row vector.
func ExampleNorm() {
	m, _ := matrix.NewDenseFromRows([][]float64{{3, 4}})

	norm, _ := matrix.Norm(m)
	fmt.Println("norm =", norm)

	// Output:
	// norm = 5
}

// ExampleInverse demonstrates inversion via adjoint over determinant, and
// that the product with the original recovers the identity.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 1},
	})

	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)

	// Output:
	// [1, -1]
	// [-1, 2]
}
