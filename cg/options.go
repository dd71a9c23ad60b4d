// SPDX-License-Identifier: MIT

// Package cg: functional configuration for the solver. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero options reproduce the implicit defaults of the reference
//     iterative packages, so callers that never configure anything get the
//     classical behavior.
package cg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the relative residual threshold ‖r‖ ≤ tol·‖b‖
	// used when no WithTolerance option is supplied.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations of 0 means "derive the cap from the system":
	// New resolves it to 2·n, the customary CG budget.
	DefaultMaxIterations = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "cg: WithTolerance: tol must be finite, in (0, 1)"
	panicIterationsInvalid = "cg: WithMaxIterations: k must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; New accepts `...Option` and resolves them
// via gatherOptions.
type options struct {
	tol     float64 // (0,1); DefaultTolerance
	maxIter int     // >=0; 0 ⇒ 2·n, resolved in New
	jacobi  bool    // Jacobi preconditioning enabled (default true)
}

// WithTolerance sets the relative residual threshold for convergence.
// The solve stops once ‖r‖₂ ≤ tol·‖b‖₂.
//
// Panics when tol is not finite or outside (0, 1) — a tolerance of 0 can
// never be met in floating point, and ≥ 1 accepts the zero iterate.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIterations caps the number of CG iterations per Solve.
// k == 0 restores the derived default of 2·n. Panics when k < 0.
func WithMaxIterations(k int) Option {
	if k < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *options) { o.maxIter = k }
}

// WithoutPreconditioner disables Jacobi preconditioning (M = identity).
// Useful for matrices whose diagonal carries no information (e.g. constant
// diagonal), where the preconditioner solve is pure overhead.
func WithoutPreconditioner() Option {
	return func(o *options) { o.jacobi = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; deterministic for a given sequence of setters.
func gatherOptions(user ...Option) options {
	o := options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		jacobi:  true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
