package curveart

import (
	"fmt"
	"math/bits"
	"slices"
)

// Bezier is a Bezier curve of arbitrary degree evaluated in explicit
// (Bernstein polynomial) form.
//
// A Bezier is immutable after construction and safe for concurrent use.
type Bezier struct {
	points []Point
	coeffs []float64 // C(degree, i) for i in [0, degree]
}

// NewBezier creates a curve from its control points. The order of the
// points defines the parametrization; a single point gives a constant curve.
// The slice is copied.
func NewBezier(controlPoints []Point) (*Bezier, error) {
	if len(controlPoints) == 0 {
		return nil, ErrEmptyControlPoints
	}
	return &Bezier{
		points: slices.Clone(controlPoints),
		coeffs: pascalRow(len(controlPoints) - 1),
	}, nil
}

// Degree returns the polynomial degree, one less than the number of
// control points.
func (b *Bezier) Degree() int {
	return len(b.points) - 1
}

// ControlPoints returns a copy of the control points.
func (b *Bezier) ControlPoints() []Point {
	return slices.Clone(b.points)
}

// Eval evaluates the curve at parameter t.
// t is conventionally in [0, 1) but any real value is accepted.
func (b *Bezier) Eval(t float64) Point {
	n := len(b.points) - 1
	u := 1 - t

	var x, y float64
	for i, p := range b.points {
		w := b.coeffs[i] * powi(u, n-i) * powi(t, i)
		x += w * p.X
		y += w * p.Y
	}
	return Point{X: x, Y: y}
}

// Sample returns precision points taken at t = i/precision for
// i = 0..precision-1.
//
// The sampled range is half-open: t never reaches 1, so the last control
// point is not part of the result.
func (b *Bezier) Sample(precision int) ([]Point, error) {
	if precision < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	out := make([]Point, precision)
	step := 1 / float64(precision)
	for i := range out {
		out[i] = b.Eval(float64(i) * step)
	}
	return out, nil
}

// EvaluateAt evaluates the Bezier curve defined by controlPoints at t.
func EvaluateAt(t float64, controlPoints []Point) (Point, error) {
	b, err := NewBezier(controlPoints)
	if err != nil {
		return Point{}, err
	}
	return b.Eval(t), nil
}

// SampleCurve samples the Bezier curve defined by controlPoints.
// See Bezier.Sample.
func SampleCurve(controlPoints []Point, precision int) ([]Point, error) {
	b, err := NewBezier(controlPoints)
	if err != nil {
		return nil, err
	}
	return b.Sample(precision)
}

// Binomial returns the exact binomial coefficient C(n, k).
func Binomial(n, k int) (uint64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("%w: binomial(%d, %d)", ErrInvalidInput, n, k)
	}
	if k > n-k {
		k = n - k
	}
	c := uint64(1)
	for i := 0; i < k; i++ {
		// c*(n-i) is always divisible by i+1 here.
		hi, lo := bits.Mul64(c, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			return 0, fmt.Errorf("%w: binomial(%d, %d)", ErrBinomialOverflow, n, k)
		}
		c, _ = bits.Div64(hi, lo, d)
	}
	return c, nil
}

// pascalRow returns row n of Pascal's triangle in floating point.
// The additive recurrence never overflows an intermediate term, unlike
// the factorial form.
func pascalRow(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for j := i; j > 0; j-- {
			row[j] += row[j-1]
		}
	}
	return row
}

// powi returns x**k for k >= 0 by binary exponentiation; powi(0, 0) == 1.
func powi(x float64, k int) float64 {
	r := 1.0
	for k > 0 {
		if k&1 == 1 {
			r *= x
		}
		x *= x
		k >>= 1
	}
	return r
}
