package closestpair

// stripMerge is the combine step of recursiveSplit. strip holds, in
// ascending Y order, every point within dMin of the split line; dMin
// is the best distance found in the two halves.
//
// For each point i the scan moves forward through j = i+1, i+2, …
// only while strip[j].Y - strip[i].Y stays below the running minimum.
// The window deliberately uses the current, possibly-tightened minimum
// rather than the original dMin: as the minimum shrinks, so does the
// window, and the packing argument keeps holding. Within either half
// all strip points are at least dMin apart, so at most a handful fit
// inside any dMin × 2·dMin window — the inner scan is O(1) per point
// and the whole merge is linear in the strip.
//
// Returns a Result with Found=true only when some strip pair beats
// dMin strictly; otherwise Found=false and Distance echoes dMin so the
// caller's half result stands. The zero-distance short-circuit matches
// bruteForce.
func stripMerge(strip []Point, dMin float64, c *Counter) Result {
	best := Result{Distance: dMin}
	n := len(strip)

	var d float64
	for i := 0; i < n; i++ {
		window := 0
		for j := i + 1; j < n && strip[j].Y-strip[i].Y < best.Distance; j++ {
			window++
			d = distanceCounted(strip[i], strip[j], c)
			if c != nil {
				c.StripDistanceEvals++
			}
			if d < best.Distance {
				best = Result{
					Distance: d,
					Pair:     Pair{A: strip[i], B: strip[j]},
					Found:    true,
				}
				if d == 0 {
					if c != nil && window > c.MaxStripWindow {
						c.MaxStripWindow = window
					}

					return best
				}
			}
		}
		if c != nil && window > c.MaxStripWindow {
			c.MaxStripWindow = window
		}
	}

	return best
}
