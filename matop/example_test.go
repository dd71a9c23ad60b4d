package matop_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/matop"
	"github.com/katalvlaran/spectral/sparsemat"
)

// ExampleRegularInverse shows the two primitives an outer eigensolver
// calls in regular-inverse mode: exact forward application and approximate
// inverse application, both against one primed operator.
func ExampleRegularInverse() {
	// B = diag(1, 2, 3) — sparse, symmetric, positive definite.
	b, _ := sparsemat.NewBuilder(3, 3, sparsemat.Lower)
	_ = b.Add(0, 0, 1)
	_ = b.Add(1, 1, 2)
	_ = b.Add(2, 2, 3)
	m, _ := b.Build()

	op, _ := matop.NewRegularInverse(m) // primes the CG solver once

	y := make([]float64, op.Rows())
	_ = op.MatProd(y, []float64{1, 1, 1}) // y = B·x
	fmt.Println("B·x   =", y)

	_ = op.Solve(y, []float64{1, 2, 3}) // y ≈ B⁻¹·x
	fmt.Println("B⁻¹·x =", y)
	fmt.Println("dims  =", op.Rows(), "×", op.Cols())

	// Output:
	// B·x   = [1 2 3]
	// B⁻¹·x = [1 1 1]
	// dims  = 3 × 3
}
