// Package closestpair finds the two closest points, by Euclidean
// distance, among a finite set of points in the plane.
//
// 🚀 What is the closest-pair problem?
//
//	Given n points, report the pair at minimal pairwise distance.
//	It is the classic introduction to geometric divide & conquer:
//	  • Collision and proximity detection
//	  • Deduplication of near-identical coordinates
//	  • Cluster seeding and spatial sanity checks
//
// ✨ Two strategies, one answer:
//   - BruteForce       — exhaustive O(n²) scan; simple, allocation-free,
//     and the correctness oracle for everything else.
//   - DivideAndConquer — O(n log n): sort once by X and by Y, split at
//     the X-median, solve halves, then merge through a vertical strip
//     whose scan is bounded by a geometric packing argument.
//
// Both return identical distances on every input (exact floating-point
// equality — they share one Distance function). When several pairs tie
// at the minimum they may report different pairs; tie-breaks are
// deterministic per strategy and documented on each function.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeo/closestpair"
//
//	points := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 9, Y: 9}}
//	res := closestpair.DivideAndConquer(points)
//	if res.Found {
//	    fmt.Println(res.Distance, res.Pair.A, res.Pair.B) // 5 {0 0} {3 4}
//	}
//
// Fewer than two points is not an error: both searches return
// Result{Found: false, Distance: +Inf}, and callers check Found.
//
// Instrumentation:
//
//	Attach a Counter via WithCounter to obtain deterministic operation
//	counts (distance evaluations, strip-window widths) — the honest way
//	to assert asymptotics in tests, where wall clocks are noise.
//
// Performance:
//
//   - BruteForce:       Time O(n²),      Space O(1)
//   - DivideAndConquer: Time O(n log n), Space O(n)
//
// The package is fully synchronous and free of shared state; every
// call is a pure function of its input and is safe to run from any
// number of goroutines concurrently.
package closestpair
