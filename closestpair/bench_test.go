package closestpair_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/closestpair"
)

// benchmarkSearch runs one strategy over a fixed deterministic point
// set of size n. Setup cost is excluded from the measurement.
func benchmarkSearch(b *testing.B, n int, search func([]closestpair.Point, ...closestpair.Option) closestpair.Result) {
	pts := randPoints(n, 10000, int64(n)) // deterministic input per size

	b.ResetTimer() // ignore generation time
	for i := 0; i < b.N; i++ {
		res := search(pts)
		if !res.Found {
			b.Fatalf("search returned no pair for n=%d", n)
		}
	}
}

// BenchmarkBruteForce_100 benchmarks the quadratic scan on 100 points.
func BenchmarkBruteForce_100(b *testing.B) {
	benchmarkSearch(b, 100, closestpair.BruteForce)
}

// BenchmarkBruteForce_1000 benchmarks the quadratic scan on 1000 points.
func BenchmarkBruteForce_1000(b *testing.B) {
	benchmarkSearch(b, 1000, closestpair.BruteForce)
}

// BenchmarkDivideAndConquer_100 benchmarks the recursive strategy on 100 points.
func BenchmarkDivideAndConquer_100(b *testing.B) {
	benchmarkSearch(b, 100, closestpair.DivideAndConquer)
}

// BenchmarkDivideAndConquer_1000 benchmarks the recursive strategy on 1000 points.
func BenchmarkDivideAndConquer_1000(b *testing.B) {
	benchmarkSearch(b, 1000, closestpair.DivideAndConquer)
}

// BenchmarkDivideAndConquer_10000 benchmarks the recursive strategy on
// 10000 points, a size where the quadratic scan is already impractical
// to iterate under the benchmark harness.
func BenchmarkDivideAndConquer_10000(b *testing.B) {
	benchmarkSearch(b, 10000, closestpair.DivideAndConquer)
}
