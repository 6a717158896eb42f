// Package bench is the wall-clock benchmark harness for the two
// closestpair strategies.
//
// For every size in a ladder it generates a fresh uniform point set,
// times BruteForce and DivideAndConquer on the identical input, and
// renders a table:
//
//	+-------+----------------+----------------------+
//	|   N   | BRUTEFORCE (S) | DIVIDEANDCONQUER (S) |
//	+-------+----------------+----------------------+
//	|   100 |       0.000041 |             0.000042 |
//	|  5000 |       0.118205 |             0.002776 |
//	+-------+----------------+----------------------+
//
// With WithRepeats(r>1) every cell becomes the mean over r runs with
// the sample standard deviation appended, smoothing scheduler noise.
//
// The harness cross-checks both strategies on every input and fails
// with ErrMismatch if the distances ever diverge — a benchmark run
// doubles as an agreement audit.
//
// Wall-clock numbers are for humans; tests asserting asymptotics
// should use closestpair.Counter instead.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeo/bench"
//
//	err := bench.Run(os.Stdout,
//	    bench.WithSizes(100, 1000, 5000),
//	    bench.WithRepeats(3),
//	    bench.WithSeed(42),
//	)
//
// Errors (sentinel):
//
//   - ErrNilWriter  if the output writer is nil.
//   - ErrNoSizes    if the size ladder is empty.
//   - ErrBadRepeats if Repeats < 1.
//   - ErrMismatch   if the strategies disagree on any input.
//   - pointgen sentinels pass through wrapped (bad bounds, negative sizes).
package bench
