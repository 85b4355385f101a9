package curveart

import (
	"context"
	"errors"
	"log/slog"
)

// Canvas is the raster target of the curve renderer.
// Implementations are owned by the caller; the renderer holds a canvas
// only for the duration of one call.
type Canvas interface {
	FillPolygon(points []Point, c RGBA)
	FillCircle(center Point, radius float64, c RGBA)
}

// SegmentCanvas is a Canvas that can also draw thin antialiased lines.
type SegmentCanvas interface {
	Canvas
	DrawAntialiasedSegment(p1, p2 Point, c RGBA)
}

// RenderStats counts how the segments of a polyline were drawn.
type RenderStats struct {
	Quads     int // segments filled as quadrilaterals
	Fallbacks int // segments drawn as two endpoint circles
}

// Add returns the element-wise sum of s and o.
func (s RenderStats) Add(o RenderStats) RenderStats {
	return RenderStats{Quads: s.Quads + o.Quads, Fallbacks: s.Fallbacks + o.Fallbacks}
}

// Segments returns the total number of segments drawn.
func (s RenderStats) Segments() int {
	return s.Quads + s.Fallbacks
}

// ThickRenderer draws polylines as thick strokes.
type ThickRenderer struct {
	Builder QuadBuilder
	Width   int
}

// DrawThickPolyline draws points as connected segments of the given
// stroke width using DefaultCloseness.
func DrawThickPolyline(c Canvas, points []Point, width int, col RGBA) RenderStats {
	return ThickRenderer{Width: width}.Draw(c, points, col)
}

// Draw draws each consecutive pair of points in order. A segment whose
// quadrilateral is rejected is drawn as two filled circles of radius
// Width/2, one at each endpoint, so the stroke stays continuous.
func (r ThickRenderer) Draw(c Canvas, points []Point, col RGBA) RenderStats {
	var stats RenderStats
	radius := float64(r.Width) / 2
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		q, err := r.Builder.Build(p1, p2, r.Width)
		if err == nil {
			c.FillPolygon(q.Points(), col)
			stats.Quads++
			continue
		}

		var dse *DegenerateSegmentError
		if errors.As(err, &dse) && Logger().Enabled(context.Background(), slog.LevelDebug) {
			Logger().Debug("segment fallback",
				slog.String("reason", dse.Reason.String()),
				slog.Any("p1", dse.P1),
				slog.Any("p2", dse.P2),
				slog.Float64("distance", dse.Distance))
		}
		c.FillCircle(p1, radius, col)
		c.FillCircle(p2, radius, col)
		stats.Fallbacks++
	}
	return stats
}

// DrawPolyline draws points as connected one pixel wide antialiased
// segments and returns the number of segments drawn.
func DrawPolyline(c SegmentCanvas, points []Point, col RGBA) int {
	n := 0
	for i := 0; i+1 < len(points); i++ {
		c.DrawAntialiasedSegment(points[i], points[i+1], col)
		n++
	}
	return n
}
