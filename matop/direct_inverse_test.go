package matop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matop"
	"github.com/katalvlaran/spectral/sparsemat"
)

func TestNewDirectInverse_RejectsNonSquare(t *testing.T) {
	rb, err := sparsemat.NewBuilder(2, 5, sparsemat.Lower)
	require.NoError(t, err)
	rect, err := rb.Build()
	require.NoError(t, err)

	op, err := matop.NewDirectInverse(rect)
	require.ErrorIs(t, err, matop.ErrNonSquare)
	require.Nil(t, op)
}

func TestNewDirectInverse_RejectsNil(t *testing.T) {
	op, err := matop.NewDirectInverse(nil)
	require.ErrorIs(t, err, matop.ErrNilMatrix)
	require.Nil(t, op)
}

func TestDirectInverse_DiagonalScenario(t *testing.T) {
	op, err := matop.NewDirectInverse(diag123(t))
	require.NoError(t, err)
	defer op.Close()

	require.Equal(t, 3, op.Rows())
	require.Equal(t, 3, op.Cols())

	y := make([]float64, 3)
	require.NoError(t, op.MatProd(y, []float64{1, 1, 1}))
	require.Equal(t, []float64{1, 2, 3}, y)

	require.NoError(t, op.Solve(y, []float64{1, 2, 3}))
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, y[i], 1e-12)
	}
}

func TestDirectInverse_AgreesWithRegularInverse(t *testing.T) {
	const n = 25
	m := spdTridiag(t, n)

	direct, err := matop.NewDirectInverse(m)
	require.NoError(t, err)
	defer direct.Close()
	iter, err := matop.NewRegularInverse(m)
	require.NoError(t, err)

	x := make([]float64, n)
	for i := range x {
		x[i] = float64((i*i)%5) - 2
	}

	yd := make([]float64, n)
	yi := make([]float64, n)
	require.NoError(t, direct.Solve(yd, x))
	require.NoError(t, iter.Solve(yi, x))
	for i := 0; i < n; i++ {
		require.InDelta(t, yd[i], yi[i], 1e-7, "direct vs iterative at %d", i)
	}
}

func TestDirectInverse_SolveRoundTrip(t *testing.T) {
	const n = 15
	m := spdTridiag(t, n)

	op, err := matop.NewDirectInverse(m)
	require.NoError(t, err)
	defer op.Close()

	x := make([]float64, n)
	x[0], x[7], x[n-1] = 1, -2, 0.5

	inv := make([]float64, n)
	back := make([]float64, n)
	require.NoError(t, op.Solve(inv, x))
	require.NoError(t, op.MatProd(back, inv))
	for i := 0; i < n; i++ {
		require.InDelta(t, x[i], back[i], 1e-10)
	}
}

func TestDirectInverse_Close(t *testing.T) {
	op, err := matop.NewDirectInverse(diag123(t))
	require.NoError(t, err)

	op.Close()
	op.Close() // idempotent

	require.ErrorIs(t, op.Solve(make([]float64, 3), make([]float64, 3)), matop.ErrClosed)

	// Shape queries and MatProd read the borrowed CSR, not the LU copy.
	require.Equal(t, 3, op.Rows())
	y := make([]float64, 3)
	require.NoError(t, op.MatProd(y, []float64{1, 0, 0}))
	require.Equal(t, []float64{1, 0, 0}, y)
}

func TestDirectInverse_LengthPreconditions(t *testing.T) {
	op, err := matop.NewDirectInverse(diag123(t))
	require.NoError(t, err)
	defer op.Close()

	require.ErrorIs(t, op.Solve(make([]float64, 2), make([]float64, 3)), sparsemat.ErrDimensionMismatch)
	require.ErrorIs(t, op.MatProd(make([]float64, 3), make([]float64, 2)), sparsemat.ErrDimensionMismatch)
}
