package closestpair

import "math"

// Point is a point in the Euclidean plane.
//
// Point is a plain value type: it is copied freely, never mutated in
// place, and two Points compare equal exactly when both coordinates
// match. Duplicate coordinates are legal input — a duplicated point is
// the only way a search can report distance 0.
type Point struct {
	X float64 // horizontal coordinate
	Y float64 // vertical coordinate
}

// Pair holds the two endpoints of a candidate closest pair.
// A and B appear in discovery order (A was scanned first).
type Pair struct {
	A Point
	B Point
}

// Result is the outcome of a closest-pair search.
//
// Invariant: Found == false if and only if Distance == math.Inf(1),
// and this happens exactly when the input held fewer than two points.
// Callers must check Found before reading Pair.
type Result struct {
	// Distance is the minimal pairwise Euclidean distance,
	// or math.Inf(1) when no pair exists.
	Distance float64

	// Pair is the closest pair itself; zero-valued when Found is false.
	Pair Pair

	// Found reports whether the input admitted any pair at all.
	Found bool
}

// noPair is the canonical "fewer than two points" outcome shared by
// both search strategies.
func noPair() Result {
	return Result{Distance: math.Inf(1)}
}

// Counter accumulates instrumentation for a single search call.
//
// Counting is purely observational: attaching a Counter never changes
// a search result. The zero value is ready to use.
//
// Typical use is asymptotic testing — comparison counts are
// deterministic where wall-clock timings are not.
type Counter struct {
	// DistanceEvals is the total number of Euclidean distance
	// evaluations performed, across every phase of the search.
	DistanceEvals int64

	// StripDistanceEvals counts the subset of DistanceEvals spent in
	// the strip-merge combine step (always 0 for BruteForce).
	StripDistanceEvals int64

	// MaxStripWindow records the widest inner scan any single strip
	// point triggered: the number of forward neighbors examined before
	// the y-window condition failed. The packing argument bounds this
	// by a small constant regardless of strip length.
	MaxStripWindow int
}

// Reset zeroes every counter field so the value can be reused across calls.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	*c = Counter{}
}

// Options configures a closest-pair search.
//
// Counter – optional instrumentation sink; nil disables counting.
type Options struct {
	Counter *Counter
}

// Option is a functional option for BruteForce and DivideAndConquer.
type Option func(*Options)

// WithCounter attaches c as the instrumentation sink for one search
// call. Passing nil is equivalent to not passing the option.
func WithCounter(c *Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// DefaultOptions returns the baseline configuration: no instrumentation.
// Use this as a starting point for further functional-option overrides.
func DefaultOptions() Options {
	return Options{Counter: nil}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
