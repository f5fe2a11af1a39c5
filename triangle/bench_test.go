package triangle_test

import (
	"testing"

	"github.com/mkoval/helltriangle/triangle"
)

// benchTriangle builds a deterministic triangle of height h with mixed
// positive and negative cells, outside the timed region.
func benchTriangle(h int) triangle.Triangle {
	tri := make(triangle.Triangle, h)
	for i := range tri {
		tri[i] = make(triangle.Row, i+1)
		for j := range tri[i] {
			tri[i][j] = (i*31+j*17)%100 - 25
		}
	}

	return tri
}

// benchmarkSolver runs fn on a height-h triangle, resetting the timer after
// setup and failing on unexpected errors.
func benchmarkSolver(b *testing.B, h int, fn func(triangle.Triangle) (int, error)) {
	tri := benchTriangle(h)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(tri); err != nil {
			b.Fatalf("solver failed: %v", err)
		}
	}
}

// BenchmarkMaxPath_Height16 benchmarks the exponential baseline. Height stays
// small: the naive recursion visits ~2^h cells.
func BenchmarkMaxPath_Height16(b *testing.B) {
	benchmarkSolver(b, 16, triangle.MaxPath)
}

// BenchmarkMaxPathCached_Height64 benchmarks the memoized solver on a small input.
func BenchmarkMaxPathCached_Height64(b *testing.B) {
	benchmarkSolver(b, 64, triangle.MaxPathCached)
}

// BenchmarkMaxPathCached_Height256 benchmarks the memoized solver on a medium input.
func BenchmarkMaxPathCached_Height256(b *testing.B) {
	benchmarkSolver(b, 256, triangle.MaxPathCached)
}

// BenchmarkMaxPathIterative_Height64 benchmarks the rolling-row solver on a small input.
func BenchmarkMaxPathIterative_Height64(b *testing.B) {
	benchmarkSolver(b, 64, triangle.MaxPathIterative)
}

// BenchmarkMaxPathIterative_Height256 benchmarks the rolling-row solver on a medium input.
func BenchmarkMaxPathIterative_Height256(b *testing.B) {
	benchmarkSolver(b, 256, triangle.MaxPathIterative)
}

// BenchmarkSolve_WithPath_Height256 benchmarks the full-table variant that
// also reconstructs the winning path.
func BenchmarkSolve_WithPath_Height256(b *testing.B) {
	tri := benchTriangle(256)
	opts := triangle.DefaultOptions()
	opts.ReturnPath = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := triangle.Solve(tri, opts); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}
