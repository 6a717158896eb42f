package closestpair

// BruteForce scans every unordered pair of points and returns the pair
// at minimal Euclidean distance.
//
// Behavior contract:
//   - Fewer than two points ⇒ the "no pair" Result (Found=false,
//     Distance=+Inf). This is a well-defined outcome, not an error.
//   - Pairs are visited in (i, j) order with i < j over the input as
//     given; the running minimum improves only on a strictly smaller
//     distance, so among tied minima the earliest pair in scan order
//     wins. This tie-break is observable and kept stable.
//   - A distance of exactly 0 (duplicate points) ends the scan
//     immediately — nothing can beat it.
//
// BruteForce is a pure function of the input sequence: no mutation,
// no internal randomness, no error modes. It doubles as the
// correctness oracle for DivideAndConquer and as its recursion base
// case.
//
// Complexity:
//   - Time:  O(n²) distance evaluations (n(n-1)/2 exactly, barring the
//     zero short-circuit).
//   - Space: O(1) beyond the input.
func BruteForce(points []Point, opts ...Option) Result {
	cfg := buildOptions(opts)

	return bruteForce(points, cfg.Counter)
}

// bruteForce is the shared uninstrumented-signature core used by both
// the public entry point and the recursion base case.
func bruteForce(points []Point, c *Counter) Result {
	n := len(points)
	if n < 2 {
		return noPair()
	}

	best := noPair()
	var d float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d = distanceCounted(points[i], points[j], c)
			if d < best.Distance {
				best = Result{
					Distance: d,
					Pair:     Pair{A: points[i], B: points[j]},
					Found:    true,
				}
				// Duplicate points: no pair can be closer than 0.
				if d == 0 {
					return best
				}
			}
		}
	}

	return best
}
