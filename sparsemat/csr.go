// SPDX-License-Identifier: MIT
// Package sparsemat: triangular-half CSR storage and symmetric kernels.
//
// Purpose:
//   - Hold exactly one triangle of a symmetric matrix in compressed sparse
//     row form (values + column indices + row pointers).
//   - Provide deterministic O(nnz) symmetric kernels over that storage.
//
// Notes:
//   - A CSR is immutable after Build/FromDense; kernels never mutate it.
//   - Non-square shapes are representable (so consumers can reject them
//     with ErrNonSquare); symmetric kernels refuse to run on them.

package sparsemat

import "sort"

// CSR is one triangular half of a sparse symmetric matrix in compressed
// sparse row form. Construct via Builder or FromDense; the zero value is
// an empty 0×0 matrix.
//
// Storage invariants (established by Build, relied upon by all kernels):
//   - len(val) == len(colIdx) == rowPtr[rows]
//   - rowPtr is monotone non-decreasing with len(rowPtr) == rows+1
//   - within each row, column indices are strictly ascending
//   - when rows == cols, every stored (i,j) satisfies the triangle tag
type CSR struct {
	rows, cols int
	tri        Triangle
	rowPtr     []int
	colIdx     []int
	val        []float64
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored (one-triangle) nonzero entries.
func (m *CSR) NNZ() int { return len(m.val) }

// Tri returns which triangular half is physically stored.
func (m *CSR) Tri() Triangle { return m.tri }

// At returns the logical symmetric entry B[i,j].
//
// Implementation:
//   - Stage 1: bounds-check i,j against the shape.
//   - Stage 2: fold (i,j) into the stored triangle when the matrix is
//     square, then binary-search the row segment.
//
// Behavior highlights:
//   - Absent entries read as 0 (sparse semantics), not as an error.
//   - On a non-square shape no folding happens; only physically stored
//     coordinates are readable.
//
// Errors:
//   - ErrOutOfRange when i or j is outside the shape.
//
// Complexity:
//   - Time O(log nnz(row)), Space O(1).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	if m.rows == m.cols {
		i, j = m.fold(i, j)
	}

	// Binary search the (sorted) column segment of row i.
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.val[k], nil
	}

	return 0, nil
}

// Diagonal copies the main diagonal of B into dst.
// Absent diagonal entries are written as 0.
//
// Errors:
//   - ErrNonSquare          when Rows != Cols.
//   - ErrDimensionMismatch  when len(dst) != Rows.
//
// Complexity:
//   - Time O(n + nnz), Space O(1) beyond dst.
func (m *CSR) Diagonal(dst []float64) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}
	if len(dst) != m.rows {
		return ErrDimensionMismatch
	}

	var i, k int
	for i = 0; i < m.rows; i++ {
		dst[i] = 0
	}
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.colIdx[k] == i {
				dst[i] = m.val[k]
			}
		}
	}

	return nil
}

// NonZeros calls fn for every stored entry in deterministic order
// (row-major, columns ascending within a row) until fn returns false.
// Coordinates are the stored-triangle coordinates; callers that need the
// full symmetric pattern mirror off-diagonal entries themselves.
func (m *CSR) NonZeros(fn func(i, j int, v float64) bool) {
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if !fn(i, m.colIdx[k], m.val[k]) {
				return
			}
		}
	}
}

// MulVecSym computes dst = B·x exploiting symmetry: each stored entry
// (i,j,v) contributes v·x[j] to dst[i] and, when off-diagonal, v·x[i] to
// dst[j]. The redundant half is never read because it is never stored.
//
// Implementation:
//   - Stage 1: validate square shape and vector lengths; zero dst.
//   - Stage 2: single pass over the stored triangle in row-major order,
//     mirroring off-diagonal contributions.
//
// Behavior highlights:
//   - Deterministic accumulation order (fixed storage order) — identical
//     inputs produce bit-identical outputs.
//   - dst is fully overwritten; x is read-only; dst and x must not alias.
//
// Inputs:
//   - dst: output vector, len == Rows.
//   - x  : input vector, len == Cols (read-only).
//
// Errors:
//   - ErrNonSquare          when Rows != Cols.
//   - ErrDimensionMismatch  on a vector length mismatch.
//
// Complexity:
//   - Time O(n + nnz), Space O(1).
func (m *CSR) MulVecSym(dst, x []float64) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}
	if len(x) != m.cols || len(dst) != m.rows {
		return ErrDimensionMismatch
	}

	var (
		i, j, k int     // loop iterators (deterministic order)
		v       float64 // stored entry value
	)
	for i = 0; i < m.rows; i++ {
		dst[i] = 0
	}
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j, v = m.colIdx[k], m.val[k]
			dst[i] += v * x[j]
			if j != i {
				// mirror the unstored half: B[j,i] == B[i,j]
				dst[j] += v * x[i]
			}
		}
	}

	return nil
}

// fold maps logical coordinates onto the stored triangle.
// Only meaningful for square shapes; callers guarantee that.
func (m *CSR) fold(i, j int) (int, int) {
	switch m.tri {
	case Upper:
		if j < i {
			return j, i
		}
	default: // Lower
		if j > i {
			return j, i
		}
	}

	return i, j
}

// FromDense reads one triangle of a dense row-major matrix into a CSR.
// Zero entries are skipped; the opposite triangle is ignored entirely
// (symmetry is assumed, never verified). Ragged or empty input yields
// ErrBadShape; non-finite entries yield ErrNaNInf.
//
// Complexity:
//   - Time O(r·c), Space O(nnz).
func FromDense(data [][]float64, tri Triangle) (*CSR, error) {
	rows := len(data)
	if rows == 0 {
		return nil, ErrBadShape
	}
	cols := len(data[0])

	b, err := NewBuilder(rows, cols, tri)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, ErrBadShape
		}
		for j = 0; j < cols; j++ {
			// Read only the chosen triangle on square shapes.
			if rows == cols {
				if tri == Lower && j > i {
					continue
				}
				if tri == Upper && j < i {
					continue
				}
			}
			if data[i][j] == 0 {
				continue
			}
			if err = b.Add(i, j, data[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}
