package sparsemat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/sparsemat"
)

func TestNewBuilder_BadShape(t *testing.T) {
	_, err := sparsemat.NewBuilder(0, 3, sparsemat.Lower)
	require.ErrorIs(t, err, sparsemat.ErrBadShape)
	_, err = sparsemat.NewBuilder(3, -1, sparsemat.Upper)
	require.ErrorIs(t, err, sparsemat.ErrBadShape)
}

func TestBuilder_FoldsAndAccumulates(t *testing.T) {
	b, err := sparsemat.NewBuilder(3, 3, sparsemat.Lower)
	require.NoError(t, err)

	// Both halves of the same logical entry land in one stored slot.
	require.NoError(t, b.Add(0, 1, 2))
	require.NoError(t, b.Add(1, 0, 3))

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestBuilder_DropsCancelledEntries(t *testing.T) {
	b, err := sparsemat.NewBuilder(2, 2, sparsemat.Lower)
	require.NoError(t, err)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(0, 0, -1))
	require.NoError(t, b.Add(1, 1, 4))

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestBuilder_RejectsBadInput(t *testing.T) {
	b, err := sparsemat.NewBuilder(2, 2, sparsemat.Lower)
	require.NoError(t, err)

	require.ErrorIs(t, b.Add(2, 0, 1), sparsemat.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, -1, 1), sparsemat.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 0, math.NaN()), sparsemat.ErrNaNInf)
	require.ErrorIs(t, b.Add(0, 0, math.Inf(1)), sparsemat.ErrNaNInf)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	b, err := sparsemat.NewBuilder(2, 2, sparsemat.Upper)
	require.NoError(t, err)
	require.NoError(t, b.Add(0, 1, 1))

	_, err = b.Build()
	require.NoError(t, err)

	require.ErrorIs(t, b.Add(0, 0, 1), sparsemat.ErrBuilderSealed)
	_, err = b.Build()
	require.ErrorIs(t, err, sparsemat.ErrBuilderSealed)
}

func TestBuilder_EmptyMatrix(t *testing.T) {
	b, err := sparsemat.NewBuilder(4, 4, sparsemat.Lower)
	require.NoError(t, err)

	m, err := b.Build()
	require.NoError(t, err)
	require.Zero(t, m.NNZ())

	dst := make([]float64, 4)
	require.NoError(t, m.MulVecSym(dst, []float64{1, 2, 3, 4}))
	require.Equal(t, []float64{0, 0, 0, 0}, dst)
}

func TestBuilder_UpperFold(t *testing.T) {
	b, err := sparsemat.NewBuilder(3, 3, sparsemat.Upper)
	require.NoError(t, err)
	require.NoError(t, b.Add(2, 0, 7)) // folds to (0,2)

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, sparsemat.Upper, m.Tri())

	var storedI, storedJ int
	m.NonZeros(func(i, j int, _ float64) bool {
		storedI, storedJ = i, j

		return true
	})
	require.Equal(t, 0, storedI)
	require.Equal(t, 2, storedJ)
}
