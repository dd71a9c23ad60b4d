// Package sparsemat stores one triangle of a sparse symmetric matrix in
// compressed sparse row (CSR) form and provides the symmetric kernels
// built on top of it.
//
// A symmetric matrix B satisfies B[i,j] == B[j,i], so only one triangular
// half needs to be stored; the other half is mirrored mathematically by
// every kernel. The package provides:
//
//   - CSR — immutable triangular-half storage with O(1) shape queries,
//     logical symmetric reads (At), diagonal extraction and deterministic
//     nonzero iteration.
//   - Builder — coordinate-wise ingestion (duplicates accumulate, entries
//     fold into the stored triangle) that compiles into a CSR.
//   - FromDense — convenience constructor reading one triangle of a dense
//     [][]float64.
//   - MulVecSym — the y = B·x product that reads the stored triangle once
//     and mirrors off-diagonal contributions, in O(nnz) time.
//
// Symmetry is assumed by convention, never verified: the builder records
// whatever the caller feeds it, folded into the chosen triangle. Shapes
// are allowed to be non-square at the storage level so that downstream
// consumers can reject them with a precise error; all symmetric kernels
// require a square shape.
//
// See the examples in this package for usage patterns.
package sparsemat
