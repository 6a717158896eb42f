package closestpair

import "math"

// Distance returns the Euclidean distance between p and q:
// sqrt((p.X-q.X)² + (p.Y-q.Y)²).
//
// The same two points always yield bit-identical output, which the
// searches rely on when they compare distances for exact equality
// (the zero short-circuit and the oracle/agreement guarantee).
//
// math.Hypot is used for its overflow/underflow safety on extreme
// coordinates; it is as deterministic as the naive formula.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// distanceCounted is Distance plus instrumentation. Every distance
// evaluation inside the searches funnels through here so that the
// DistanceEvals counter stays exact.
func distanceCounted(p, q Point, c *Counter) float64 {
	if c != nil {
		c.DistanceEvals++
	}

	return Distance(p, q)
}
