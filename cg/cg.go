// SPDX-License-Identifier: MIT
// Package cg: the preconditioned conjugate-gradient kernel.
//
// The recurrence follows the classical PCG formulation:
//
//	z = M⁻¹·r,  ρ = r·z,  β = ρ/ρ₋₁,  p = z + β·p,
//	α = ρ/(p·Bp),  x += α·p,  r -= α·Bp
//
// with M the Jacobi (diagonal) preconditioner primed at construction.

package cg

import (
	"github.com/katalvlaran/spectral/sparsemat"
	"gonum.org/v1/gonum/floats"
)

// Result reports the outcome of one Solve call.
//
// Fields:
//   - Iterations — CG iterations performed (0 for a zero right-hand side).
//   - Residual   — final relative residual ‖r‖₂/‖b‖₂ (0 when ‖b‖ = 0).
//   - Converged  — whether the stopping rule ‖r‖ ≤ tol·‖b‖ was met.
//
// Converged == false is NOT an error: the destination vector still holds
// the last iterate, which an outer iteration may well tolerate.
type Result struct {
	Iterations int
	Residual   float64
	Converged  bool
}

// Solver is the primed iterative state for one fixed system matrix.
// It borrows the matrix (never copies, never mutates it) and exclusively
// owns its preconditioner and workspace. A Solver instance is
// single-goroutine by contract: Solve mutates shared workspace with no
// locking discipline.
type Solver struct {
	mat     *sparsemat.CSR
	n       int
	tol     float64
	maxIter int

	// invDiag is the primed Jacobi preconditioner (1/B[i,i]);
	// nil when preconditioning is disabled.
	invDiag []float64

	// workspace, reused across every Solve; never aliased to caller slices.
	r, z, p, bp []float64

	last Result
}

// New primes a Solver against the matrix m.
//
// Implementation:
//   - Stage 1: validate m non-nil and square (fail before any setup).
//   - Stage 2: resolve options, compute the inverse diagonal once and
//     allocate all workspace vectors.
//
// Behavior highlights:
//   - Setup cost O(n + nnz) is paid exactly once and amortized across the
//     many Solve calls of an outer eigensolver iteration.
//   - Zero diagonal entries fall back to identity scaling for that row —
//     a violation of positive definiteness surfaces later as
//     non-convergence, never as a construction error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n + nnz), Space O(n).
func New(m *sparsemat.CSR, opts ...Option) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}

	o := gatherOptions(opts...)
	n := m.Rows()
	s := &Solver{
		mat:     m,
		n:       n,
		tol:     o.tol,
		maxIter: o.maxIter,
		r:       make([]float64, n),
		z:       make([]float64, n),
		p:       make([]float64, n),
		bp:      make([]float64, n),
	}
	if s.maxIter == 0 {
		s.maxIter = 2 * n // customary CG budget
	}

	if o.jacobi {
		s.invDiag = make([]float64, n)
		if err := m.Diagonal(s.invDiag); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if s.invDiag[i] != 0 {
				s.invDiag[i] = 1 / s.invDiag[i]
			} else {
				s.invDiag[i] = 1 // identity fallback on an empty pivot
			}
		}
	}

	return s, nil
}

// Dim returns the system dimension n.
func (s *Solver) Dim() int { return s.n }

// Last returns the Result of the most recent Solve call.
// Before any Solve it is the zero Result.
func (s *Solver) Last() Result { return s.last }

// Solve runs preconditioned CG on B·dst = b from a zero initial guess,
// overwriting dst with the approximate solution.
//
// Implementation:
//   - Stage 1: validate lengths; short-circuit b = 0 to dst = 0.
//   - Stage 2: iterate the PCG recurrence until ‖r‖ ≤ tol·‖b‖, the
//     iteration cap, or breakdown (p·Bp ≤ 0 ⇒ B not positive definite).
//
// Behavior highlights:
//   - Best effort: cap exhaustion and breakdown end the loop with
//     Converged=false; dst holds the last iterate either way. The happy
//     path never fails mid-iteration.
//   - No allocation: all vectors were primed in New.
//   - dst and b must not alias each other or any workspace.
//
// Inputs:
//   - dst: destination, len == Dim(), fully overwritten.
//   - b  : right-hand side, len == Dim(), read-only.
//
// Returns:
//   - Result: iterations, final relative residual, convergence flag.
//   - error : ErrDimensionMismatch only; never a mid-iteration failure.
//
// Determinism:
//   - Fixed recurrence order and deterministic MulVecSym accumulation —
//     identical inputs produce bit-identical iterates.
//
// Complexity:
//   - Time O(iterations · nnz), Space O(1) beyond primed state.
func (s *Solver) Solve(dst, b []float64) (Result, error) {
	if len(dst) != s.n || len(b) != s.n {
		return Result{}, ErrDimensionMismatch
	}

	var i int
	for i = 0; i < s.n; i++ {
		dst[i] = 0
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		// B·0 = 0 exactly; nothing to iterate.
		s.last = Result{Converged: true}

		return s.last, nil
	}

	copy(s.r, b) // r₀ = b - B·x₀ with x₀ = 0

	var (
		iters         int
		rho, rhoPrev  float64
		alpha, beta   float64
		pbp, residual float64
		converged     bool
	)
	residual = 1 // relative; ‖r₀‖ = ‖b‖

	for iters = 1; iters <= s.maxIter; iters++ {
		s.psolve() // z = M⁻¹·r
		rho = floats.Dot(s.r, s.z)

		if iters == 1 {
			copy(s.p, s.z)
		} else {
			beta = rho / rhoPrev
			floats.AddScaledTo(s.p, s.z, beta, s.p) // p = z + β·p
		}

		_ = s.mat.MulVecSym(s.bp, s.p) // lengths fixed at New; cannot fail

		pbp = floats.Dot(s.p, s.bp)
		if pbp <= 0 {
			// Breakdown: direction of non-positive curvature, B is not SPD.
			// Keep the last iterate and report non-convergence.
			iters--

			break
		}
		alpha = rho / pbp
		floats.AddScaled(dst, alpha, s.p)   // x += α·p
		floats.AddScaled(s.r, -alpha, s.bp) // r -= α·Bp

		residual = floats.Norm(s.r, 2) / bnorm
		if residual <= s.tol {
			converged = true

			break
		}
		rhoPrev = rho
	}
	if iters > s.maxIter {
		iters = s.maxIter
	}

	s.last = Result{Iterations: iters, Residual: residual, Converged: converged}

	return s.last, nil
}

// psolve applies the primed preconditioner: z = M⁻¹·r.
func (s *Solver) psolve() {
	if s.invDiag == nil {
		copy(s.z, s.r)

		return
	}
	for i := 0; i < s.n; i++ {
		s.z[i] = s.invDiag[i] * s.r[i]
	}
}
