// SPDX-License-Identifier: MIT
// Package sparsemat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// sparsemat package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel panics on user-triggered error
// conditions.

package sparsemat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparsemat: ..." for consistency and easy
// grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) only at outer
// boundaries; callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	// Builders must validate the shape before any allocation.
	ErrBadShape = errors.New("sparsemat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At, Builder.Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("sparsemat: index out of range")

	// ErrDimensionMismatch indicates an incompatible vector length for a kernel,
	// e.g. MulVecSym where len(x) != Cols or len(dst) != Rows.
	ErrDimensionMismatch = errors.New("sparsemat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Symmetric kernels (MulVecSym, Diagonal) demand Rows == Cols.
	ErrNonSquare = errors.New("sparsemat: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion, where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("sparsemat: NaN or Inf encountered")

	// ErrBuilderSealed indicates a Builder was reused after Build.
	// A Builder compiles exactly one CSR; construct a new one for the next matrix.
	ErrBuilderSealed = errors.New("sparsemat: builder already built")
)
