package curveart

import "math"

// DefaultCloseness is the segment length at or below which BuildQuad
// refuses to build a quadrilateral.
const DefaultCloseness = 5.0

// Quad is a stroke quadrilateral: the four corners of a rectangle that
// follows a segment, in boundary order.
type Quad [4]Point

// Points returns the corners as a slice suitable for polygon filling.
func (q Quad) Points() []Point {
	return q[:]
}

// QuadBuilder turns segments into stroke quadrilaterals.
// The zero value uses DefaultCloseness.
type QuadBuilder struct {
	// Closeness is the minimum exclusive segment length.
	Closeness float64
}

// BuildQuad builds the stroke quadrilateral for the segment p1-p2 using
// DefaultCloseness. See QuadBuilder.Build.
func BuildQuad(p1, p2 Point, width int) (Quad, error) {
	return QuadBuilder{}.Build(p1, p2, width)
}

// Build returns the quadrilateral of thickness width centered on the
// segment from p1 to p2. The corners are ordered p1-o, p1+o, p2+o, p2-o
// where o is the half-width offset perpendicular to the segment.
//
// A rejection is returned as a *DegenerateSegmentError, which matches
// ErrDegenerateSegment. It is an expected outcome for short segments.
func (b QuadBuilder) Build(p1, p2 Point, width int) (Quad, error) {
	closeness := b.Closeness
	if closeness == 0 {
		closeness = DefaultCloseness
	}

	d := Distance(p1, p2)
	if d <= closeness {
		return Quad{}, &DegenerateSegmentError{Reason: ReasonTooClose, P1: p1, P2: p2, Distance: d}
	}

	// (|dy|/d, |dx|/d) is perpendicular only when the deltas have opposite
	// signs or one is zero. Otherwise it runs along the segment, so the
	// signed normal is used instead.
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	tg := math.Abs(dy) / d
	ctg := math.Abs(dx) / d
	if dx*dy > 0 {
		tg, ctg = -dy/d, dx/d
	}

	half := float64(width) / 2
	o := Point{X: half * tg, Y: half * ctg}

	q := Quad{p1.Sub(o), p1.Add(o), p2.Add(o), p2.Sub(o)}
	if q.collapsed() {
		return Quad{}, &DegenerateSegmentError{Reason: ReasonDegeneratePolygon, P1: p1, P2: p2, Distance: d}
	}
	return q, nil
}

// collapsed reports whether the quad cannot be filled as a simple polygon.
func (q Quad) collapsed() bool {
	if q[0] == q[3] {
		return true
	}
	for i, p := range q {
		if !p.IsFinite() || p == q[(i+1)%len(q)] {
			return true
		}
	}
	return false
}
