// SPDX-License-Identifier: MIT
// Package matop: sentinel error set. Constructors return these sentinels;
// tests check them via errors.Is. Apply operations surface only violated
// length preconditions (as sparsemat/cg sentinels), never iteration
// failures.

package matop

import "errors"

var (
	// ErrNilMatrix indicates a nil *sparsemat.CSR was passed to a constructor.
	ErrNilMatrix = errors.New("matop: matrix is nil")

	// ErrNonSquare rejects a non-square operand matrix at construction,
	// before any solver priming or factorization happens.
	ErrNonSquare = errors.New("matop: matrix must be square")

	// ErrFactorization signals that the one-time sparse LU factorization
	// behind DirectInverse failed (structurally singular operand).
	ErrFactorization = errors.New("matop: sparse factorization failed")

	// ErrClosed indicates a DirectInverse solve after Close released the
	// factorization.
	ErrClosed = errors.New("matop: operator is closed")
)
