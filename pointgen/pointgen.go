package pointgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlgeo/closestpair"
)

// Sentinel errors returned by the generator.
var (
	// ErrNegativeCount indicates a negative requested point count.
	ErrNegativeCount = errors.New("pointgen: point count must be non-negative")

	// ErrInvalidBounds indicates Min >= Max in the coordinate range.
	ErrInvalidBounds = errors.New("pointgen: Min must be strictly below Max")
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Default coordinate range, matching the demo scale.
const (
	defaultMin = 0.0
	defaultMax = 10000.0
)

// Options configures point generation.
//
// Min, Max – half-open coordinate interval [Min, Max) applied to both axes.
// Seed     – deterministic stream selector; 0 means defaultSeed.
// Rand     – caller-owned stream; when non-nil it wins over Seed.
type Options struct {
	Min  float64
	Max  float64
	Seed int64
	Rand *rand.Rand
}

// Option is a functional option for Uniform.
type Option func(*Options)

// WithBounds sets the half-open coordinate interval [min, max) for
// both axes. Validation happens inside Uniform, not here.
func WithBounds(min, max float64) Option {
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

// WithSeed selects a deterministic private random stream.
// Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies a caller-owned random stream, e.g. one shared
// across several generators. Takes precedence over WithSeed.
// Note: *rand.Rand is not goroutine-safe; do not share one stream
// across concurrent generators.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// DefaultOptions returns the baseline configuration: [0, 10000) on
// both axes, fixed default stream.
func DefaultOptions() Options {
	return Options{
		Min:  defaultMin,
		Max:  defaultMax,
		Seed: 0,
		Rand: nil,
	}
}

// Uniform returns n points with independently uniform coordinates in
// [Min, Max) on each axis, drawn from an explicit deterministic stream.
//
// Contract:
//   - n must be ≥ 0 (else ErrNegativeCount); n == 0 returns an empty
//     non-nil slice.
//   - Min < Max (else ErrInvalidBounds).
//   - Generation order is fixed: for each point, X is drawn before Y,
//     so a given stream always yields the same set in the same order.
//
// Complexity: O(n).
func Uniform(n int, opts ...Option) ([]closestpair.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate parameters early; no side effects on invalid input.
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if cfg.Min >= cfg.Max {
		return nil, ErrInvalidBounds
	}

	// 2) Resolve the random stream (explicit state, never ambient).
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	// 3) Draw the coordinates in fixed order.
	span := cfg.Max - cfg.Min
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: cfg.Min + rng.Float64()*span,
			Y: cfg.Min + rng.Float64()*span,
		}
	}

	return pts, nil
}
