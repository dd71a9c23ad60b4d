// SPDX-License-Identifier: MIT
// Package cg: sentinel error set. All entry points return these sentinels
// and tests check them via errors.Is. Non-convergence is deliberately NOT
// an error (see Result.Converged).

package cg

import "errors"

var (
	// ErrNilMatrix indicates a nil *sparsemat.CSR was passed to New.
	ErrNilMatrix = errors.New("cg: matrix is nil")

	// ErrNonSquare signals that the system matrix is not square.
	// Detected in New, before any preconditioner setup.
	ErrNonSquare = errors.New("cg: matrix is not square")

	// ErrDimensionMismatch indicates a right-hand-side or destination
	// vector whose length differs from the system dimension.
	ErrDimensionMismatch = errors.New("cg: dimension mismatch")
)
