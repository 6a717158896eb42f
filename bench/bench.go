package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlgeo/closestpair"
	"github.com/katalvlaran/lvlgeo/pointgen"
)

// Sentinel errors returned by the harness.
var (
	// ErrNilWriter indicates a nil output writer.
	ErrNilWriter = errors.New("bench: output writer is nil")

	// ErrNoSizes indicates an empty size ladder.
	ErrNoSizes = errors.New("bench: size ladder is empty")

	// ErrBadRepeats indicates Repeats < 1.
	ErrBadRepeats = errors.New("bench: Repeats must be at least 1")

	// ErrMismatch indicates the two strategies disagreed on a distance.
	// This never fires for correct implementations; it exists so a
	// benchmark run doubles as an agreement audit.
	ErrMismatch = errors.New("bench: strategies disagree on minimal distance")
)

// defaultSizes is the ladder used when WithSizes is not given.
var defaultSizes = []int{100, 500, 1000, 2000, 5000}

// Options configures a harness run.
//
// Sizes    – point counts to measure, in output order.
// Repeats  – timed runs per (size, strategy); means are reported.
// Seed     – pointgen stream selector (0 ⇒ pointgen default stream).
// Min, Max – coordinate range handed to pointgen.
type Options struct {
	Sizes   []int
	Repeats int
	Seed    int64
	Min     float64
	Max     float64
}

// Option is a functional option for Run.
type Option func(*Options)

// WithSizes replaces the default size ladder.
func WithSizes(sizes ...int) Option {
	return func(o *Options) {
		o.Sizes = sizes
	}
}

// WithRepeats sets how many timed runs back each reported mean.
// Validation happens inside Run, not here.
func WithRepeats(r int) Option {
	return func(o *Options) {
		o.Repeats = r
	}
}

// WithSeed selects the deterministic stream the point sets are drawn
// from. Timings still vary run to run; the inputs do not.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBounds sets the coordinate range of the generated sets.
func WithBounds(min, max float64) Option {
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

// DefaultOptions returns the baseline configuration: the default
// ladder, one run per cell, default stream, [0, 10000) coordinates.
func DefaultOptions() Options {
	return Options{
		Sizes:   defaultSizes,
		Repeats: 1,
		Seed:    0,
		Min:     0,
		Max:     10000,
	}
}

// Run executes the ladder and renders the timing table to w.
//
// For each size a fresh point set is drawn from one shared stream, so
// consecutive sizes see independent inputs while the whole run stays
// reproducible for a given seed. Both strategies are timed on the
// identical slice and their distances are cross-checked.
//
// Complexity: dominated by the quadratic scan of the largest size —
// O(Repeats · Σ n²).
func Run(w io.Writer, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate the run configuration (fail fast, nothing written).
	if w == nil {
		return ErrNilWriter
	}
	if len(cfg.Sizes) == 0 {
		return ErrNoSizes
	}
	if cfg.Repeats < 1 {
		return ErrBadRepeats
	}

	// 2) One shared stream for every generated set.
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	// 3) Measure every rung before rendering, so an error never leaves
	//    a half-drawn table behind.
	rows := make([][]string, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		pts, err := pointgen.Uniform(n,
			pointgen.WithBounds(cfg.Min, cfg.Max),
			pointgen.WithRand(rng),
		)
		if err != nil {
			return fmt.Errorf("bench: generating %d points: %w", n, err)
		}

		bfSecs := make([]float64, cfg.Repeats)
		dncSecs := make([]float64, cfg.Repeats)
		for r := 0; r < cfg.Repeats; r++ {
			start := time.Now()
			bf := closestpair.BruteForce(pts)
			bfSecs[r] = time.Since(start).Seconds()

			start = time.Now()
			dnc := closestpair.DivideAndConquer(pts)
			dncSecs[r] = time.Since(start).Seconds()

			if bf.Distance != dnc.Distance {
				return fmt.Errorf("%w: n=%d bf=%g dnc=%g", ErrMismatch, n, bf.Distance, dnc.Distance)
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(n),
			formatSeconds(bfSecs, cfg.Repeats),
			formatSeconds(dncSecs, cfg.Repeats),
		})
	}

	// 4) Render.
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"n", "BruteForce (s)", "DivideAndConquer (s)"})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	return nil
}

// formatSeconds renders one measurement cell: the mean over repeats,
// with the sample standard deviation appended when repeats > 1.
func formatSeconds(secs []float64, repeats int) string {
	mean := stat.Mean(secs, nil)
	if repeats == 1 {
		return fmt.Sprintf("%.6f", mean)
	}

	return fmt.Sprintf("%.6f ±%.6f", mean, stat.StdDev(secs, nil))
}
