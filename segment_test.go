package curveart

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"same point", Pt(3, 4), Pt(3, 4), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative deltas", Pt(3, 4), Pt(0, 0), 5},
		{"horizontal", Pt(-10, 2), Pt(10, 2), 20},
		{"vertical", Pt(1, -1), Pt(1, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.p1, tt.p2); got != tt.want {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if got := tt.p2.Distance(tt.p1); got != tt.want {
				t.Errorf("reversed Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1.5, -2.25), Pt(-1e6, 3), Pt(1999, 0.001), Pt(-7, -7)}
	for _, a := range pts {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range pts {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance not symmetric for %v, %v", a, b)
			}
			if Distance(a, b) < 0 {
				t.Errorf("Distance(%v, %v) negative", a, b)
			}
		}
	}
}

func TestBuildQuad_Horizontal(t *testing.T) {
	q, err := BuildQuad(Pt(0, 0), Pt(10, 0), 4)
	if err != nil {
		t.Fatalf("BuildQuad error: %v", err)
	}
	want := Quad{Pt(0, -2), Pt(0, 2), Pt(10, 2), Pt(10, -2)}
	if diff := cmp.Diff(want, q, cmpopts.EquateApprox(0, epsilon)); diff != "" {
		t.Errorf("BuildQuad mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildQuad_Corners(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Quad
	}{
		{"rightward", Pt(0, 0), Pt(10, 0), Quad{Pt(0, -2), Pt(0, 2), Pt(10, 2), Pt(10, -2)}},
		{"leftward", Pt(10, 0), Pt(0, 0), Quad{Pt(10, -2), Pt(10, 2), Pt(0, 2), Pt(0, -2)}},
		{"downward", Pt(0, 0), Pt(0, 10), Quad{Pt(-2, 0), Pt(2, 0), Pt(2, 10), Pt(-2, 10)}},
		{"upward", Pt(0, 10), Pt(0, 0), Quad{Pt(-2, 10), Pt(2, 10), Pt(2, 0), Pt(-2, 0)}},
		{"right and up", Pt(0, 0), Pt(30, -40), Quad{Pt(-1.6, -1.2), Pt(1.6, 1.2), Pt(31.6, -38.8), Pt(28.4, -41.2)}},
		{"left and down", Pt(30, -40), Pt(0, 0), Quad{Pt(28.4, -41.2), Pt(31.6, -38.8), Pt(1.6, 1.2), Pt(-1.6, -1.2)}},
		{"right and down", Pt(0, 0), Pt(30, 40), Quad{Pt(1.6, -1.2), Pt(-1.6, 1.2), Pt(28.4, 41.2), Pt(31.6, 38.8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuad(tt.p1, tt.p2, 4)
			if err != nil {
				t.Fatalf("BuildQuad error: %v", err)
			}
			if diff := cmp.Diff(tt.want, q, cmpopts.EquateApprox(0, epsilon)); diff != "" {
				t.Errorf("BuildQuad(%v, %v) mismatch (-want +got):\n%s", tt.p1, tt.p2, diff)
			}
		})
	}
}

func TestBuildQuad_TooClose(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
	}{
		{"exactly at threshold", Pt(0, 0), Pt(3, 4)},
		{"same point", Pt(5, 5), Pt(5, 5)},
		{"short", Pt(100, 100), Pt(101, 102)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuad(tt.p1, tt.p2, 10)
			if !errors.Is(err, ErrDegenerateSegment) {
				t.Fatalf("BuildQuad error = %v, want ErrDegenerateSegment", err)
			}
			var dse *DegenerateSegmentError
			if !errors.As(err, &dse) {
				t.Fatalf("error %T is not *DegenerateSegmentError", err)
			}
			if dse.Reason != ReasonTooClose {
				t.Errorf("Reason = %v, want %v", dse.Reason, ReasonTooClose)
			}
			if dse.Distance > DefaultCloseness {
				t.Errorf("Distance = %v, want <= %v", dse.Distance, DefaultCloseness)
			}
		})
	}
}

func TestBuildQuad_JustOverThreshold(t *testing.T) {
	if _, err := BuildQuad(Pt(0, 0), Pt(5.0001, 0), 2); err != nil {
		t.Errorf("BuildQuad just over threshold: %v", err)
	}
}

func TestBuildQuad_Geometry(t *testing.T) {
	segments := []struct{ p1, p2 Point }{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(0, 0), Pt(0, 10)},
		{Pt(0, 0), Pt(30, 40)},
		{Pt(0, 0), Pt(30, -40)},
		{Pt(100, 100), Pt(60, 70)},
		{Pt(100, 100), Pt(130, 60)},
		{Pt(500, 20), Pt(12, 1900)},
	}
	for _, s := range segments {
		for _, w := range []int{1, 2, 3, 10} {
			q, err := BuildQuad(s.p1, s.p2, w)
			if err != nil {
				t.Fatalf("BuildQuad(%v, %v, %d): %v", s.p1, s.p2, w, err)
			}
			for i := range q {
				for j := i + 1; j < len(q); j++ {
					if q[i] == q[j] {
						t.Errorf("%v-%v w=%d: corners %d and %d coincide", s.p1, s.p2, w, i, j)
					}
				}
			}
			// Thickness equals the width and the long side follows the segment.
			if got := Distance(q[0], q[1]); math.Abs(got-float64(w)) > 1e-9 {
				t.Errorf("%v-%v w=%d: thickness %v", s.p1, s.p2, w, got)
			}
			if got, want := Distance(q[1], q[2]), Distance(s.p1, s.p2); math.Abs(got-want) > 1e-9 {
				t.Errorf("%v-%v w=%d: length %v, want %v", s.p1, s.p2, w, got, want)
			}
			// The offset is perpendicular to the segment.
			dir := s.p2.Sub(s.p1)
			off := q[1].Sub(q[0])
			if dot := dir.X*off.X + dir.Y*off.Y; math.Abs(dot) > 1e-9 {
				t.Errorf("%v-%v w=%d: offset not perpendicular, dot=%v", s.p1, s.p2, w, dot)
			}
			// Midpoints of the short sides are the segment endpoints.
			if !pointsEqual(q[0].Lerp(q[1], 0.5), s.p1, 1e-9) || !pointsEqual(q[2].Lerp(q[3], 0.5), s.p2, 1e-9) {
				t.Errorf("%v-%v w=%d: quad not centered on segment: %v", s.p1, s.p2, w, q)
			}
		}
	}
}

func TestBuildQuad_DegeneratePolygon(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		width  int
	}{
		{"zero width", Pt(0, 0), Pt(10, 0), 0},
		{"infinite endpoint", Pt(0, 0), Pt(math.Inf(1), 0), 2},
		{"nan endpoint", Pt(math.NaN(), 0), Pt(10, 0), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuad(tt.p1, tt.p2, tt.width)
			var dse *DegenerateSegmentError
			if !errors.As(err, &dse) {
				t.Fatalf("BuildQuad error = %v, want *DegenerateSegmentError", err)
			}
			if dse.Reason != ReasonDegeneratePolygon {
				t.Errorf("Reason = %v, want %v", dse.Reason, ReasonDegeneratePolygon)
			}
		})
	}
}

func TestQuadBuilder_Closeness(t *testing.T) {
	b := QuadBuilder{Closeness: 1}
	if _, err := b.Build(Pt(0, 0), Pt(3, 4), 2); err != nil {
		t.Errorf("Build with closeness 1: %v", err)
	}
	b = QuadBuilder{Closeness: 20}
	if _, err := b.Build(Pt(0, 0), Pt(10, 0), 2); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("Build with closeness 20 error = %v, want ErrDegenerateSegment", err)
	}
}

func TestSegmentRejection_String(t *testing.T) {
	if got := ReasonTooClose.String(); got != "points too close" {
		t.Errorf("ReasonTooClose = %q", got)
	}
	if got := ReasonDegeneratePolygon.String(); got != "degenerate polygon" {
		t.Errorf("ReasonDegeneratePolygon = %q", got)
	}
	if got := SegmentRejection(9).String(); got != "SegmentRejection(9)" {
		t.Errorf("unknown reason = %q", got)
	}
}
