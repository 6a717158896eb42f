// Package lvlgeo is a small computational-geometry toolkit for the
// plane, built around the classic closest-pair problem.
//
// 🚀 What is lvlgeo?
//
//	A library plus demo tooling for finding the two nearest points of
//	a finite planar set:
//	  • closestpair/ — the algorithms: an O(n²) brute-force oracle and
//	    an O(n log n) divide & conquer search that agree exactly on
//	    every input
//	  • pointgen/    — deterministic uniform point-set generation
//	  • bench/       — wall-clock benchmark ladder with table output
//	  • viz/         — scatter-plot rendering of a search result
//	  • cmd/closest-demo — the end-to-end demonstration binary
//
// ✨ Why choose lvlgeo?
//
//   - Two strategies, one answer – the quadratic scan doubles as the
//     correctness oracle for the recursive search
//   - Deterministic by construction – explicit seeds, no ambient
//     randomness, operation counters instead of wall clocks in tests
//   - Pure values – points, pairs and results are immutable; every
//     search is a total function with no error modes
//
// Start with package closestpair; everything else consumes it.
package lvlgeo
