// Package viz renders a closest-pair search result as a scatter plot.
//
// The whole point set is drawn in blue; when the result holds a pair,
// its two endpoints are re-drawn in red and joined by a dashed red
// segment. The output is a PNG on disk — viz is a read-only consumer
// of the core types and performs no algorithmic work.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeo/viz"
//
//	res := closestpair.DivideAndConquer(points)
//	if err := viz.SavePNG("closest_pair.png", points, res); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors (sentinel):
//
//   - ErrEmptyPath if the target path is empty.
//   - ErrNoPoints  if the point set is empty (an empty plot helps nobody).
//
// Rendering is delegated to gonum.org/v1/plot; any of its encoding or
// filesystem errors pass through wrapped.
package viz
