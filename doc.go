// Package spectral is a small sparse linear-operator toolkit for
// generalized symmetric eigenproblems A·x = λ·B·x solved in
// regular-inverse mode.
//
// 🚀 What is spectral?
//
//	An outer eigensolver (Lanczos/Arnoldi-style restarts) never needs B⁻¹
//	explicitly — it only needs two primitives over a fixed sparse
//	symmetric positive-definite B:
//	  • y = B·x    (exact forward application)
//	  • y = B⁻¹·x  (approximate inverse application via an iterative solve)
//	spectral supplies exactly those primitives, nothing more.
//
// ✨ Key features:
//   - triangular-half sparse storage: only one triangle of B is read,
//     the other is mirrored mathematically
//   - primed conjugate-gradient state: preconditioner setup runs once at
//     construction and is reused across the eigensolver's many solves
//   - best-effort inverse application: non-convergence never aborts an
//     outer iteration that tolerates approximate inverses
//   - a direct LU-backed sibling operator for small or ill-conditioned B
//
// Under the hood, everything is organized under three subpackages:
//
//	sparsemat/ — triangular-half CSR storage, builder & symmetric kernels
//	cg/        — primed, reusable preconditioned conjugate-gradient solver
//	matop/     — the operator contract consumed by an external eigensolver
//
// Quick sketch:
//
//	b, _ := sparsemat.FromDense(spd, sparsemat.Lower)
//	op, _ := matop.NewRegularInverse(b)
//	y := make([]float64, op.Rows())
//	_ = op.MatProd(y, x) // y = B·x
//	_ = op.Solve(y, x)   // y ≈ B⁻¹·x
//
// See the examples in each subpackage for usage patterns.
package spectral
