package closestpair

import (
	"math"
	"sort"
)

// baseCaseSize is the slice length at or below which recursion stops
// and the quadratic scan takes over. At n ≤ 3 the scan costs at most
// three distance evaluations, cheaper than another split.
const baseCaseSize = 3

// DivideAndConquer finds the closest pair by recursive spatial
// bisection. It returns exactly the same distance as BruteForce on
// every input (bit-identical: both derive minima from Distance), while
// performing O(n log n) work instead of O(n²).
//
// Behavior contract:
//   - Fewer than two points ⇒ the "no pair" Result, as in BruteForce.
//   - The input slice is never mutated; both sorted projections are
//     private copies.
//   - Among tied minimal pairs the reported pair may differ from
//     BruteForce's (the tie-break here is right-half-wins, then
//     strict-improvement-only in the strip); the distance never does.
//
// Algorithm outline:
//  1. Sort one projection of the set ascending by X and one ascending
//     by Y. This happens exactly once; recursion only filters these
//     orderings, never re-sorts — that is what keeps each level linear.
//  2. Recurse (recursiveSplit): split at the X-median, solve halves,
//     then merge through a vertical strip around the split line
//     (stripMerge).
//
// Complexity:
//   - Time:  O(n log n) — two sorts plus T(n) = 2T(n/2) + O(n).
//   - Space: O(n) per recursion level for the partitions, O(log n) depth.
func DivideAndConquer(points []Point, opts ...Option) Result {
	cfg := buildOptions(opts)

	if len(points) < 2 {
		return noPair()
	}

	// Sorted projections: built once, threaded through the recursion.
	// Stable sorts keep equal coordinates in input order, so the
	// derived orderings — and therefore the reported pair — are
	// deterministic for a given input sequence.
	px := make([]Point, len(points))
	copy(px, points)
	sort.SliceStable(px, func(i, j int) bool { return px[i].X < px[j].X })

	py := make([]Point, len(points))
	copy(py, points)
	sort.SliceStable(py, func(i, j int) bool { return py[i].Y < py[j].Y })

	return recursiveSplit(px, py, cfg.Counter)
}

// recursiveSplit is the recursive core. px is ordered by X; py holds
// the same points ordered by Y (a stable sub-sequence of the top-level
// Y ordering, never freshly sorted).
func recursiveSplit(px, py []Point, c *Counter) Result {
	n := len(px)
	if n <= baseCaseSize {
		return bruteForce(px, c)
	}

	// 1) Split px at its midpoint; midX is the split line.
	mid := n / 2
	midX := px[mid].X
	pxLeft, pxRight := px[:mid], px[mid:]

	// 2) Partition py around midX with a single stable pass: each
	//    side keeps its relative Y order without re-sorting. Points
	//    exactly on the line go left.
	pyLeft := make([]Point, 0, mid)
	pyRight := make([]Point, 0, n-mid)
	for _, p := range py {
		if p.X <= midX {
			pyLeft = append(pyLeft, p)
		} else {
			pyRight = append(pyRight, p)
		}
	}

	// 3) Solve both halves independently.
	left := recursiveSplit(pxLeft, pyLeft, c)
	right := recursiveSplit(pxRight, pyRight, c)

	// 4) Keep the smaller half result; the right half wins exact ties.
	best := right
	if left.Distance < right.Distance {
		best = left
	}

	// 5) Build the strip: every point within best.Distance of the
	//    split line, in Y order (py already is).
	strip := make([]Point, 0, n)
	for _, p := range py {
		if math.Abs(p.X-midX) < best.Distance {
			strip = append(strip, p)
		}
	}

	// 6) The strip result overrides only on strict improvement.
	if s := stripMerge(strip, best.Distance, c); s.Found {
		best = s
	}

	return best
}
