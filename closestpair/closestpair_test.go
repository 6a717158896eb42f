package closestpair_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgeo/closestpair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randPoints returns n points with uniform coordinates in [0, span)
// from a deterministic stream. Tests never use time-based seeds.
func randPoints(n int, span float64, seed int64) []closestpair.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: rng.Float64() * span,
			Y: rng.Float64() * span,
		}
	}

	return pts
}

// TestBruteForce_Degenerate verifies the "no pair" outcome for inputs
// of length 0 and 1.
func TestBruteForce_Degenerate(t *testing.T) {
	for _, pts := range [][]closestpair.Point{nil, {}, {{X: 1, Y: 2}}} {
		res := closestpair.BruteForce(pts)
		assert.False(t, res.Found, "fewer than two points must not yield a pair")
		assert.True(t, math.IsInf(res.Distance, 1), "sentinel distance must be +Inf")
	}
}

// TestDivideAndConquer_Degenerate mirrors the degenerate cases for the
// recursive strategy.
func TestDivideAndConquer_Degenerate(t *testing.T) {
	for _, pts := range [][]closestpair.Point{nil, {}, {{X: -3, Y: 7}}} {
		res := closestpair.DivideAndConquer(pts)
		assert.False(t, res.Found, "fewer than two points must not yield a pair")
		assert.True(t, math.IsInf(res.Distance, 1), "sentinel distance must be +Inf")
	}
}

// TestSearch_KnownTriangle pins the textbook 3-4-5 case: both
// strategies must report distance 5 between (0,0) and (3,4).
func TestSearch_KnownTriangle(t *testing.T) {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 9, Y: 9}}
	want := closestpair.Pair{A: closestpair.Point{X: 0, Y: 0}, B: closestpair.Point{X: 3, Y: 4}}

	bf := closestpair.BruteForce(pts)
	require.True(t, bf.Found)
	assert.Equal(t, 5.0, bf.Distance, "brute force distance")
	assert.Equal(t, want, bf.Pair, "brute force pair")

	dnc := closestpair.DivideAndConquer(pts)
	require.True(t, dnc.Found)
	assert.Equal(t, 5.0, dnc.Distance, "divide & conquer distance")
	assert.Equal(t, want, dnc.Pair, "divide & conquer pair")
}

// TestSearch_ZeroDistanceShortCircuit verifies that duplicate points
// yield distance 0 with the duplicated pair, from both strategies.
func TestSearch_ZeroDistanceShortCircuit(t *testing.T) {
	pts := []closestpair.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 5, Y: 5}}
	want := closestpair.Pair{A: closestpair.Point{X: 1, Y: 1}, B: closestpair.Point{X: 1, Y: 1}}

	bf := closestpair.BruteForce(pts)
	require.True(t, bf.Found)
	assert.Equal(t, 0.0, bf.Distance)
	assert.Equal(t, want, bf.Pair)

	dnc := closestpair.DivideAndConquer(pts)
	require.True(t, dnc.Found)
	assert.Equal(t, 0.0, dnc.Distance)
	assert.Equal(t, want, dnc.Pair)
}

// TestBruteForce_TieBreakFirstFound pins the documented tie-break:
// among equally close pairs, the first in (i<j) scan order wins.
func TestBruteForce_TieBreakFirstFound(t *testing.T) {
	// (0,0)-(1,0) and (0,0)-(0,1) both measure 1; the former is
	// scanned first.
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	res := closestpair.BruteForce(pts)
	require.True(t, res.Found)
	assert.Equal(t, 1.0, res.Distance)
	assert.Equal(t,
		closestpair.Pair{A: closestpair.Point{X: 0, Y: 0}, B: closestpair.Point{X: 1, Y: 0}},
		res.Pair,
		"earliest pair in scan order must win ties")
}

// TestSearch_AllIdentical covers the fully degenerate-but-valid input
// where every point coincides.
func TestSearch_AllIdentical(t *testing.T) {
	pts := make([]closestpair.Point, 16)
	for i := range pts {
		pts[i] = closestpair.Point{X: 2, Y: -2}
	}

	bf := closestpair.BruteForce(pts)
	dnc := closestpair.DivideAndConquer(pts)
	require.True(t, bf.Found)
	require.True(t, dnc.Found)
	assert.Equal(t, 0.0, bf.Distance)
	assert.Equal(t, 0.0, dnc.Distance)
}

// TestSearch_Collinear exercises exactly collinear input, where every
// strip at every level is maximally populated.
func TestSearch_Collinear(t *testing.T) {
	pts := make([]closestpair.Point, 64)
	for i := range pts {
		// Shrinking gaps: the closest pair is the last two points.
		pts[i] = closestpair.Point{X: 100 - 100/float64(i+1), Y: 5}
	}

	bf := closestpair.BruteForce(pts)
	dnc := closestpair.DivideAndConquer(pts)
	require.True(t, bf.Found)
	require.True(t, dnc.Found)
	assert.Equal(t, bf.Distance, dnc.Distance, "strategies must agree on collinear input")
}

// TestSearch_Agreement is the oracle property: on random sets of
// varied sizes both strategies return the exact same distance (bitwise
// float equality), and each reported pair actually measures that
// distance.
func TestSearch_Agreement(t *testing.T) {
	sizes := []int{2, 3, 4, 5, 7, 10, 16, 33, 64, 100, 250}
	var seed int64
	for _, n := range sizes {
		for trial := 0; trial < 5; trial++ {
			seed++
			pts := randPoints(n, 1000, seed)

			bf := closestpair.BruteForce(pts)
			dnc := closestpair.DivideAndConquer(pts)

			require.True(t, bf.Found, "n=%d seed=%d", n, seed)
			require.True(t, dnc.Found, "n=%d seed=%d", n, seed)
			assert.Equal(t, bf.Distance, dnc.Distance, "n=%d seed=%d: strategies disagree", n, seed)

			// Pair identity may legitimately differ on ties, but each
			// reported pair must realize the reported distance.
			assert.Equal(t, bf.Distance, closestpair.Distance(bf.Pair.A, bf.Pair.B))
			assert.Equal(t, dnc.Distance, closestpair.Distance(dnc.Pair.A, dnc.Pair.B))
		}
	}
}

// TestSearch_Determinism verifies that repeated calls on the same
// input return bit-identical results.
func TestSearch_Determinism(t *testing.T) {
	pts := randPoints(200, 50, 42)

	assert.Equal(t, closestpair.BruteForce(pts), closestpair.BruteForce(pts))
	assert.Equal(t, closestpair.DivideAndConquer(pts), closestpair.DivideAndConquer(pts))
}

// TestSearch_CounterNeutral verifies that attaching a Counter never
// changes a result.
func TestSearch_CounterNeutral(t *testing.T) {
	pts := randPoints(150, 10, 7)
	var c closestpair.Counter

	assert.Equal(t,
		closestpair.BruteForce(pts),
		closestpair.BruteForce(pts, closestpair.WithCounter(&c)))
	assert.Equal(t,
		closestpair.DivideAndConquer(pts),
		closestpair.DivideAndConquer(pts, closestpair.WithCounter(&c)))
}

// TestBruteForce_EvalCount pins the exact comparison count of the
// quadratic scan: n(n-1)/2 distance evaluations when no zero-distance
// pair cuts it short.
func TestBruteForce_EvalCount(t *testing.T) {
	const n = 40
	pts := randPoints(n, 100, 3)

	var c closestpair.Counter
	closestpair.BruteForce(pts, closestpair.WithCounter(&c))
	assert.Equal(t, int64(n*(n-1)/2), c.DistanceEvals)
}

// TestStripMerge_WindowBound drives the recursion with a dense
// two-column set hugging the split line, so strips stay maximally
// populated, and asserts the packing bound: no single strip point ever
// scans more than a small constant number of forward neighbors.
func TestStripMerge_WindowBound(t *testing.T) {
	const (
		columns = 200
		gap     = 1e-6 // horizontal separation of the two columns
		step    = 0.01 // vertical spacing within a column
	)
	pts := make([]closestpair.Point, 0, 2*columns)
	for i := 0; i < columns; i++ {
		pts = append(pts,
			closestpair.Point{X: 0.5 - gap, Y: float64(i) * step},
			closestpair.Point{X: 0.5 + gap, Y: float64(i)*step + step/2},
		)
	}

	var c closestpair.Counter
	res := closestpair.DivideAndConquer(pts, closestpair.WithCounter(&c))

	require.True(t, res.Found)
	assert.Equal(t, closestpair.BruteForce(pts).Distance, res.Distance)
	assert.LessOrEqual(t, c.MaxStripWindow, 8,
		"inner strip scan must stay constant-bounded regardless of strip size")
}

// TestSearch_ScalingSanity compares deterministic operation counts
// across a size ladder: brute force grows quadratically by
// construction, while the recursive strategy must grow far slower
// (n log n), independent of wall clocks.
func TestSearch_ScalingSanity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping counter-based scaling ladder in -short mode")
	}

	sizes := []int{100, 1000, 10000}
	bfEvals := make([]int64, len(sizes))
	dncEvals := make([]int64, len(sizes))

	for i, n := range sizes {
		pts := randPoints(n, 1e6, int64(1000+n))

		var bc, dc closestpair.Counter
		closestpair.BruteForce(pts, closestpair.WithCounter(&bc))
		closestpair.DivideAndConquer(pts, closestpair.WithCounter(&dc))
		bfEvals[i] = bc.DistanceEvals
		dncEvals[i] = dc.DistanceEvals

		assert.Equal(t, int64(n*(n-1)/2), bfEvals[i], "n=%d", n)
	}

	// At n=10000 the gap must be dramatic.
	assert.Less(t, dncEvals[2], bfEvals[2]/100,
		"divide & conquer must do a fraction of the quadratic work at n=10000")

	// Per tenfold size increase: brute force multiplies by ~100, the
	// recursive count by roughly 10·log-factor. A loose 25× ceiling
	// separates n log n growth from quadratic growth with margin.
	assert.Less(t, dncEvals[1], 25*dncEvals[0], "100→1000 growth must be near-linear")
	assert.Less(t, dncEvals[2], 25*dncEvals[1], "1000→10000 growth must be near-linear")
}
