// Package cg implements a primed, reusable preconditioned conjugate-gradient
// solver for sparse symmetric positive-definite systems B·x = b.
//
// 🚀 Why "primed"?
//
//	An outer eigensolver calls the inverse application B⁻¹·x many times
//	against the same B. Everything that depends only on B — the Jacobi
//	preconditioner and all workspace vectors — is therefore computed once
//	in New and reused across every Solve. A Solve call allocates nothing.
//
// ✨ Key features:
//   - Jacobi (inverse-diagonal) preconditioning, primed at construction
//   - best-effort contract: breakdown on a non-SPD system or hitting the
//     iteration cap ends the loop with Converged=false and the last
//     iterate — it never aborts mid-iteration
//   - stopping rule ‖r‖₂ ≤ tol·‖b‖₂, with tolerance and iteration cap
//     configurable via functional options
//
// ⚙️ Usage:
//
//	s, err := cg.New(b, cg.WithTolerance(1e-8))
//	if err != nil { ... }
//	res, err := s.Solve(x, rhs) // x ≈ B⁻¹·rhs
//
// A Solver mutates internal state on every Solve (workspace, convergence
// history); it is single-goroutine by contract. Independent Solver
// instances are fully independent.
//
// Performance:
//   - New:   O(n + nnz) one-time setup
//   - Solve: O(iterations · nnz)
package cg
