// Package scene drives a full curveart render: it draws random Bezier
// curves onto a canvas and writes the result to disk.
package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/curveart"
	"github.com/gogpu/curveart/internal/config"
)

// RandomSource supplies the randomness of a scene. *math/rand/v2.Rand
// satisfies it. A scene never seeds or shares its source.
type RandomSource interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RandomPoints returns n points with integer coordinates drawn uniformly
// from [0, width) x [0, height).
func RandomPoints(rng RandomSource, n, width, height int) []curveart.Point {
	pts := make([]curveart.Point, n)
	for i := range pts {
		pts[i] = curveart.Pt(float64(rng.IntN(width)), float64(rng.IntN(height)))
	}
	return pts
}

// Options describes what a scene draws.
type Options struct {
	Width, Height int
	Background    curveart.RGBA

	Curves        int
	ControlPoints int
	Precision     int
	StrokeWidth   int
	CurveColor    curveart.RGBA

	// Thin connecting lines through a shuffled subset of each curve's
	// points. LineFraction is the share of points used.
	Lines        bool
	LineFraction float64
	LineColor    curveart.RGBA

	Output      string
	PreviewPath string
	PreviewSize int
}

// FromConfig converts a validated configuration to scene options.
func FromConfig(cfg config.Config) Options {
	return Options{
		Width:         cfg.Canvas.Width,
		Height:        cfg.Canvas.Height,
		Background:    cfg.Canvas.Background.RGBA,
		Curves:        cfg.Curves.Count,
		ControlPoints: cfg.Curves.ControlPoints,
		Precision:     cfg.Curves.Precision,
		StrokeWidth:   cfg.Curves.StrokeWidth,
		CurveColor:    cfg.Curves.Color.RGBA,
		Lines:         cfg.Lines.Enabled,
		LineFraction:  cfg.Lines.Fraction,
		LineColor:     cfg.Lines.Color.RGBA,
		Output:        cfg.Output.Path,
		PreviewPath:   cfg.Output.PreviewPath,
		PreviewSize:   cfg.Output.PreviewSize,
	}
}

// Stats summarizes a render.
type Stats struct {
	Curves       int
	Strokes      curveart.RenderStats
	LineSegments int
}

// ErrSave wraps failures to persist the rendered image.
var ErrSave = errors.New("scene: save failed")

// Scene renders one image. It is not safe for concurrent use.
type Scene struct {
	opts   Options
	rng    RandomSource
	stroke curveart.ThickRenderer
	log    *slog.Logger
}

// New creates a scene. A nil logger discards output.
func New(opts Options, rng RandomSource, log *slog.Logger) (*Scene, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", curveart.ErrInvalidInput)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", curveart.ErrInvalidInput, opts.Width, opts.Height)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Scene{
		opts:   opts,
		rng:    rng,
		stroke: curveart.ThickRenderer{Width: opts.StrokeWidth},
		log:    log,
	}, nil
}

// Render draws all curves onto a new pixmap. Cancellation is checked
// between curves.
func (s *Scene) Render(ctx context.Context) (*curveart.Pixmap, Stats, error) {
	pm := curveart.NewPixmap(s.opts.Width, s.opts.Height)
	pm.Clear(s.opts.Background)

	var stats Stats
	for i := 0; i < s.opts.Curves; i++ {
		if err := ctx.Err(); err != nil {
			return pm, stats, err
		}
		cs, n, err := s.DrawCurve(pm)
		if err != nil {
			return pm, stats, fmt.Errorf("curve %d: %w", i, err)
		}
		stats.Curves++
		stats.Strokes = stats.Strokes.Add(cs)
		stats.LineSegments += n
	}
	s.log.Info("render complete",
		slog.Int("curves", stats.Curves),
		slog.Int("quads", stats.Strokes.Quads),
		slog.Int("fallbacks", stats.Strokes.Fallbacks),
		slog.Int("line_segments", stats.LineSegments))
	return pm, stats, nil
}

// DrawCurve draws one random curve onto c and, when enabled, its thin
// connecting lines. It returns the stroke stats and the number of thin
// segments drawn.
func (s *Scene) DrawCurve(c curveart.SegmentCanvas) (curveart.RenderStats, int, error) {
	ctrl := RandomPoints(s.rng, s.opts.ControlPoints, s.opts.Width, s.opts.Height)
	pts, err := curveart.SampleCurve(ctrl, s.opts.Precision)
	if err != nil {
		return curveart.RenderStats{}, 0, err
	}
	stats := s.stroke.Draw(c, pts, s.opts.CurveColor)
	s.log.Debug("curve drawn",
		slog.Any("control_points", ctrl),
		slog.Int("quads", stats.Quads),
		slog.Int("fallbacks", stats.Fallbacks))

	if !s.opts.Lines {
		return stats, 0, nil
	}
	k := int(s.opts.LineFraction * float64(len(pts)))
	if k < 2 {
		return stats, 0, nil
	}
	sub := slices.Clone(pts)
	s.rng.Shuffle(len(sub), func(i, j int) { sub[i], sub[j] = sub[j], sub[i] })
	return stats, curveart.DrawPolyline(c, sub[:k], s.opts.LineColor), nil
}

// Run renders the scene and writes the output image, plus the preview
// when a preview path is set. Save failures wrap ErrSave.
func (s *Scene) Run(ctx context.Context) (Stats, error) {
	pm, stats, err := s.Render(ctx)
	if err != nil {
		return stats, err
	}
	if err := pm.SavePNG(s.opts.Output); err != nil {
		return stats, fmt.Errorf("%w: %s: %w", ErrSave, s.opts.Output, err)
	}
	s.log.Info("image saved", slog.String("path", s.opts.Output))

	if s.opts.PreviewPath != "" {
		if err := pm.SaveThumbnailPNG(s.opts.PreviewPath, s.opts.PreviewSize); err != nil {
			return stats, fmt.Errorf("%w: %s: %w", ErrSave, s.opts.PreviewPath, err)
		}
		s.log.Info("preview saved", slog.String("path", s.opts.PreviewPath))
	}
	return stats, nil
}
