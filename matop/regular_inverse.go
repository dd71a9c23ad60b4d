// SPDX-License-Identifier: MIT
// Package matop: CG-backed regular-inverse operator.

package matop

import (
	"fmt"

	"github.com/katalvlaran/spectral/cg"
	"github.com/katalvlaran/spectral/sparsemat"
)

// RegularInverse presents a fixed sparse symmetric positive-definite B as
// an Operator: MatProd is the exact symmetric product over the stored
// triangle, Solve is an approximate B⁻¹ application through a
// conjugate-gradient solver primed once at construction.
//
// The operand matrix is borrowed, not copied: it must outlive the operator
// and must not be mutated while the operator is alive. The dimension never
// changes after construction. One instance is single-goroutine by contract
// (Solve mutates the primed solver state).
type RegularInverse struct {
	n      int
	mat    *sparsemat.CSR
	solver *cg.Solver
}

// compile-time contract check
var _ Operator = (*RegularInverse)(nil)

// NewRegularInverse binds an operator to m and primes its iterative solver.
//
// Implementation:
//   - Stage 1: reject nil and non-square operands — BEFORE any solver
//     setup, so a failed construction does no work.
//   - Stage 2: prime one cg.Solver (Jacobi preconditioner + workspace),
//     reused across every subsequent Solve.
//
// Behavior highlights:
//   - Positive definiteness is NOT validated here; a violation surfaces
//     later as solver non-convergence (see Stats), matching the operator's
//     role inside an outer iteration with its own convergence checks.
//   - With no options the solver uses its documented defaults; options
//     pass through to cg.New for callers that want explicit control.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n + nnz) one-time priming, Space O(n).
func NewRegularInverse(m *sparsemat.CSR, opts ...cg.Option) (*RegularInverse, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}

	solver, err := cg.New(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewRegularInverse: %w", err)
	}

	return &RegularInverse{n: m.Rows(), mat: m, solver: solver}, nil
}

// Rows returns the operator dimension n.
func (op *RegularInverse) Rows() int { return op.n }

// Cols returns the operator dimension n.
func (op *RegularInverse) Cols() int { return op.n }

// MatProd overwrites dst with the exact product B·x, reading only the
// stored triangular half and mirroring it mathematically. Deterministic,
// O(nnz), no iteration; the only failure mode is a violated length
// precondition (sparsemat.ErrDimensionMismatch).
func (op *RegularInverse) MatProd(dst, x []float64) error {
	return op.mat.MulVecSym(dst, x)
}

// Solve overwrites dst with an approximate solution of B·dst = x from the
// primed solver. Best effort: if B is not positive definite or the
// iteration cap is hit, dst holds whatever iterate the method last
// produced and no error is raised — only a violated length precondition
// (cg.ErrDimensionMismatch) returns an error. Diagnostics for the last
// call are available via Stats.
func (op *RegularInverse) Solve(dst, x []float64) error {
	if _, err := op.solver.Solve(dst, x); err != nil {
		return err
	}

	return nil
}

// Stats returns the convergence diagnostics of the most recent Solve call
// (zero Result before any Solve). Purely informational; the Operator
// contract never turns non-convergence into an error.
func (op *RegularInverse) Stats() cg.Result {
	return op.solver.Last()
}
