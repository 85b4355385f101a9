// Package curveart generates decorative Bezier curve art.
//
// # Overview
//
// A curve is defined by a few control points and evaluated in explicit
// Bernstein form. The sampled points are drawn as thick strokes: every
// consecutive pair becomes a filled quadrilateral, or two filled circles
// when the pair is too short to give the quadrilateral a stable direction.
//
// # Quick Start
//
//	import "github.com/gogpu/curveart"
//
//	pts, err := curveart.SampleCurve([]curveart.Point{
//	    curveart.Pt(0, 0), curveart.Pt(250, 500), curveart.Pt(500, 0),
//	}, 1000)
//	if err != nil {
//	    return err
//	}
//
//	pm := curveart.NewPixmap(500, 500)
//	pm.Clear(curveart.RGB8(0, 0, 100))
//	curveart.DrawThickPolyline(pm, pts, 4, curveart.RGB8(255, 100, 100))
//	err = pm.SavePNG("curve.png")
//
// # Sampling
//
// Sample and SampleCurve take precision points at t = i/precision. The
// parameter never reaches 1, so the final control point is not part of the
// sampled sequence.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package curveart
