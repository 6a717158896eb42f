package viz

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlgeo/closestpair"
)

// Sentinel errors returned by the renderer.
var (
	// ErrEmptyPath indicates an empty output file path.
	ErrEmptyPath = errors.New("viz: output path is empty")

	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("viz: point set is empty")
)

// Default canvas: square, 6 inches a side, like the original notebook
// figure this plot mirrors.
const defaultSizeInches = 6.0

// defaultTitle is used when WithTitle is not given.
const defaultTitle = "Closest Pair of Points"

// Options configures the rendered figure.
//
// Title – figure title.
// Size  – square canvas side, in inches (must be > 0).
type Options struct {
	Title string
	Size  float64
}

// Option is a functional option for SavePNG.
type Option func(*Options)

// WithTitle overrides the figure title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithSize sets the square canvas side in inches. Non-positive values
// fall back to the default.
func WithSize(inches float64) Option {
	return func(o *Options) {
		if inches > 0 {
			o.Size = inches
		}
	}
}

// DefaultOptions returns the baseline figure configuration.
func DefaultOptions() Options {
	return Options{
		Title: defaultTitle,
		Size:  defaultSizeInches,
	}
}

// SavePNG writes a scatter plot of points to path. When res.Found, the
// winning pair is highlighted in red and connected with a dashed line.
//
// The plot is purely presentational: points are drawn as given, the
// result is trusted, nothing is recomputed.
func SavePNG(path string, points []closestpair.Point, res closestpair.Result, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if path == "" {
		return ErrEmptyPath
	}
	if len(points) == 0 {
		return ErrNoPoints
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	// All points, in blue.
	all := make(plotter.XYs, len(points))
	for i, pt := range points {
		all[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	scatter, err := plotter.NewScatter(all)
	if err != nil {
		return fmt.Errorf("viz: building scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 0xff, A: 0xff}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(scatter)
	p.Legend.Add("Points", scatter)

	// The winning pair, re-drawn in red and joined by a dashed segment.
	if res.Found {
		pair := plotter.XYs{
			{X: res.Pair.A.X, Y: res.Pair.A.Y},
			{X: res.Pair.B.X, Y: res.Pair.B.Y},
		}

		highlight, err := plotter.NewScatter(pair)
		if err != nil {
			return fmt.Errorf("viz: building highlight: %w", err)
		}
		highlight.GlyphStyle.Color = color.RGBA{R: 0xff, A: 0xff}
		highlight.GlyphStyle.Radius = vg.Points(3.5)

		segment, err := plotter.NewLine(pair)
		if err != nil {
			return fmt.Errorf("viz: building segment: %w", err)
		}
		segment.LineStyle.Color = color.RGBA{R: 0xff, A: 0xff}
		segment.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

		p.Add(segment, highlight)
		p.Legend.Add("Closest Pair", highlight)
	}

	side := vg.Length(cfg.Size) * vg.Inch
	if err := p.Save(side, side, path); err != nil {
		return fmt.Errorf("viz: saving %q: %w", path, err)
	}

	return nil
}
