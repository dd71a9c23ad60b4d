// SPDX-License-Identifier: MIT
// Package sparsemat: coordinate-wise construction of triangular-half CSR.

package sparsemat

import (
	"math"
	"sort"
)

// entry is one raw coordinate contribution recorded by Add.
type entry struct {
	i, j int
	v    float64
}

// Builder accumulates coordinate entries and compiles them into a CSR.
// Duplicates accumulate (numerically summed), and on square shapes every
// coordinate is folded into the stored triangle, so callers may feed
// either half — or both halves of an assembled operator — freely.
//
// A Builder compiles exactly one CSR: after Build it is sealed and every
// further call returns ErrBuilderSealed.
type Builder struct {
	rows, cols int
	tri        Triangle
	entries    []entry
	sealed     bool
}

// NewBuilder creates a Builder for a rows×cols matrix storing the given
// triangle. Non-square shapes are accepted (the operator layer rejects
// them with a precise error); folding applies only when rows == cols.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
func NewBuilder(rows, cols int, tri Triangle) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Builder{rows: rows, cols: cols, tri: tri}, nil
}

// Add records the contribution v at logical coordinate (i, j).
//
// Behavior highlights:
//   - On square shapes (i,j) is folded into the stored triangle first,
//     so Add(1,2,v) and Add(2,1,v) hit the same stored slot.
//   - Duplicate coordinates accumulate at Build time; explicit zeros are
//     legal here and dropped during compilation.
//
// Errors:
//   - ErrBuilderSealed when the Builder was already built.
//   - ErrOutOfRange   when (i,j) is outside the shape.
//   - ErrNaNInf       when v is NaN or ±Inf.
//
// Complexity:
//   - Amortized O(1).
func (b *Builder) Add(i, j int, v float64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	if b.rows == b.cols {
		switch b.tri {
		case Upper:
			if j < i {
				i, j = j, i
			}
		default: // Lower
			if j > i {
				i, j = j, i
			}
		}
	}
	b.entries = append(b.entries, entry{i: i, j: j, v: v})

	return nil
}

// Build compiles the recorded entries into an immutable CSR and seals the
// Builder.
//
// Implementation:
//   - Stage 1: sort entries by (row, column) — a fixed total order, so
//     compilation is deterministic regardless of Add order.
//   - Stage 2: merge duplicates by summation, drop entries whose merged
//     value is exactly 0, and lay out val/colIdx/rowPtr in one pass.
//
// Errors:
//   - ErrBuilderSealed on a second Build.
//
// Complexity:
//   - Time O(k log k) for k recorded entries, Space O(k).
func (b *Builder) Build() (*CSR, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	sort.Slice(b.entries, func(p, q int) bool {
		if b.entries[p].i != b.entries[q].i {
			return b.entries[p].i < b.entries[q].i
		}

		return b.entries[p].j < b.entries[q].j
	})

	m := &CSR{
		rows:   b.rows,
		cols:   b.cols,
		tri:    b.tri,
		rowPtr: make([]int, b.rows+1),
		colIdx: make([]int, 0, len(b.entries)),
		val:    make([]float64, 0, len(b.entries)),
	}

	var (
		k   int     // cursor into sorted entries
		row int     // current output row
		sum float64 // merged value of the current coordinate
	)
	for k = 0; k < len(b.entries); {
		e := b.entries[k]

		// Merge the run of duplicates at (e.i, e.j).
		sum = 0
		for k < len(b.entries) && b.entries[k].i == e.i && b.entries[k].j == e.j {
			sum += b.entries[k].v
			k++
		}
		if sum == 0 {
			continue // duplicates cancelled out; drop the slot
		}

		// Advance rowPtr up to the entry's row.
		for row < e.i {
			row++
			m.rowPtr[row] = len(m.val)
		}
		m.colIdx = append(m.colIdx, e.j)
		m.val = append(m.val, sum)
	}
	for row < b.rows {
		row++
		m.rowPtr[row] = len(m.val)
	}
	b.entries = nil

	return m, nil
}
