package cg_test

import (
	"testing"

	"github.com/katalvlaran/spectral/cg"
	"github.com/katalvlaran/spectral/sparsemat"
)

// benchmarkSolve primes one solver for a tridiagonal SPD system of size n
// and times repeated solves against a fixed right-hand side. It resets the
// timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int, opts ...cg.Option) {
	mb, _ := sparsemat.NewBuilder(n, n, sparsemat.Lower)
	for i := 0; i < n; i++ {
		_ = mb.Add(i, i, 3)
		if i > 0 {
			_ = mb.Add(i, i-1, -1)
		}
	}
	m, err := mb.Build()
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	s, err := cg.New(m, opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = float64(i%7) - 3 // predictable sign-varying fill
	}
	x := make([]float64, n)

	b.ResetTimer() // ignore priming time
	for i := 0; i < b.N; i++ {
		if _, err = s.Solve(x, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a primed solver on a 100-dim system.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 100)
}

// BenchmarkSolve_Medium benchmarks a primed solver on a 1000-dim system.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 1000)
}

// BenchmarkSolve_MediumNoPrecond measures the Jacobi preconditioner's win
// on the same 1000-dim system.
func BenchmarkSolve_MediumNoPrecond(b *testing.B) {
	benchmarkSolve(b, 1000, cg.WithoutPreconditioner())
}
