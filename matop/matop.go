// Package matop: the operator contract.
package matop

// Operator is the minimal surface an external generalized eigensolver
// needs to treat a fixed symmetric positive-definite B as an abstract
// operator in regular-inverse mode.
//
// Vector contract (both apply operations):
//   - dst and x are caller-owned, len == Rows() == Cols(); the operator
//     neither stores nor aliases them beyond the call.
//   - dst is fully overwritten; x is read-only; dst and x must not alias.
//   - The only returned errors are violated length preconditions; an
//     iterative solve that fails to converge still fills dst with its
//     last iterate (best effort) and returns nil.
type Operator interface {
	// Rows returns the operator dimension n. Always succeeds.
	Rows() int

	// Cols returns the operator dimension n. Always succeeds.
	Cols() int

	// MatProd overwrites dst with the exact forward application B·x.
	MatProd(dst, x []float64) error

	// Solve overwrites dst with an approximate inverse application B⁻¹·x.
	Solve(dst, x []float64) error
}
