// Package sparsemat: triangle selection for symmetric storage.
package sparsemat

// Triangle selects which half of a symmetric matrix is physically stored.
//
//   - Lower — entries with j ≤ i are stored; the strict upper triangle is
//     mirrored mathematically by every kernel.
//   - Upper — entries with j ≥ i are stored; the strict lower triangle is
//     mirrored.
//
// The choice never affects results, only which coordinates the builder
// folds into. Lower is the conventional default.
type Triangle int

const (
	// Lower stores the lower triangular half (j ≤ i).
	Lower Triangle = iota

	// Upper stores the upper triangular half (j ≥ i).
	Upper
)

// String returns a human-readable triangle tag.
func (t Triangle) String() string {
	if t == Upper {
		return "Upper"
	}

	return "Lower"
}
