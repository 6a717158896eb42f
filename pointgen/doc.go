// Package pointgen produces random planar point sets for demos,
// benchmarks and property tests of the closestpair searches.
//
// 🚀 What does it generate?
//
//	Uniform(n) returns n points whose coordinates are independently
//	uniform over a configurable half-open interval [Min, Max) per axis.
//
// Determinism policy:
//
//   - Same seed ⇒ identical point set across platforms and runs.
//   - Seed 0 selects a fixed default seed, never a time-based source.
//   - Random state is always explicit: pass WithSeed for a private
//     stream, or WithRand to supply a caller-owned *rand.Rand (which
//     takes precedence). Nothing in this package touches the global
//     math/rand state.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeo/pointgen"
//
//	pts, err := pointgen.Uniform(1000,
//	    pointgen.WithBounds(0, 10000),
//	    pointgen.WithSeed(42),
//	)
//
// Errors (sentinel):
//
//   - ErrNegativeCount  if n < 0 (n == 0 yields an empty, valid set).
//   - ErrInvalidBounds  if Min >= Max.
//
// Complexity: O(n) time, O(n) space.
package pointgen
