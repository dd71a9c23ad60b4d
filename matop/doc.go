// Package matop defines the linear-operator surface a generalized symmetric
// eigensolver consumes in regular-inverse mode, and its two implementations
// over a sparse symmetric positive-definite B.
//
// 🚀 What is a regular-inverse operator?
//
//	For A·x = λ·B·x the outer solver treats B as an abstract operator with
//	exactly two primitives — y = B·x and y = B⁻¹·x — plus shape queries.
//	B⁻¹ is never formed: the inverse application is an approximate linear
//	solve against the original sparse B.
//
// Two implementations share the Operator contract:
//
//   - RegularInverse — inverse application via a conjugate-gradient solver
//     primed once at construction (preconditioner setup amortized across
//     the eigensolver's many iterations). The canonical choice for large
//     sparse B.
//   - DirectInverse — inverse application via a one-time sparse LU
//     factorization; every Solve is two triangular substitutions. Exact up
//     to factorization accuracy; owns the factorization and exposes Close.
//
// Both operators borrow the caller-owned matrix for their whole lifetime:
// the matrix must outlive the operator and must not be mutated while the
// operator is alive. Operators never mutate it and never retain caller
// vectors beyond a call. One operator instance is single-goroutine by
// contract (Solve mutates internal solver state); independent instances
// are fully independent.
//
// Failure philosophy: exactly one checked condition — a non-square matrix
// at construction, rejected before any solver setup. Positive definiteness
// is never validated up front; a violation surfaces later as solver
// non-convergence, visible through RegularInverse.Stats, never as an error
// from Solve.
package matop
