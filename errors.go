package curveart

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every error caused by arguments that
// cannot produce a meaningful result. Such errors are fatal to the call.
var ErrInvalidInput = errors.New("curveart: invalid input")

var (
	// ErrEmptyControlPoints is returned when a curve has no control points.
	ErrEmptyControlPoints = fmt.Errorf("%w: empty control point set", ErrInvalidInput)

	// ErrInvalidPrecision is returned when fewer than one sample is requested.
	ErrInvalidPrecision = fmt.Errorf("%w: precision must be at least 1", ErrInvalidInput)

	// ErrBinomialOverflow is returned when an exact binomial coefficient
	// does not fit in a uint64.
	ErrBinomialOverflow = errors.New("curveart: binomial coefficient overflows uint64")
)

// ErrDegenerateSegment matches every rejection produced by BuildQuad.
// It marks an expected outcome: callers fall back to another drawing
// strategy instead of aborting.
var ErrDegenerateSegment = errors.New("curveart: degenerate segment")

// SegmentRejection is the reason code of a DegenerateSegmentError.
type SegmentRejection uint8

const (
	// ReasonTooClose means the endpoints are within the closeness threshold.
	ReasonTooClose SegmentRejection = iota + 1

	// ReasonDegeneratePolygon means the offset corners collapsed.
	ReasonDegeneratePolygon
)

// String returns the human-readable reason.
func (r SegmentRejection) String() string {
	switch r {
	case ReasonTooClose:
		return "points too close"
	case ReasonDegeneratePolygon:
		return "degenerate polygon"
	default:
		return fmt.Sprintf("SegmentRejection(%d)", uint8(r))
	}
}

// DegenerateSegmentError reports why a segment could not be turned into a
// stroke quadrilateral.
type DegenerateSegmentError struct {
	Reason   SegmentRejection
	P1, P2   Point
	Distance float64
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("curveart: degenerate segment (%v,%v)-(%v,%v): %s",
		e.P1.X, e.P1.Y, e.P2.X, e.P2.Y, e.Reason)
}

// Is makes errors.Is(err, ErrDegenerateSegment) hold for every rejection.
func (e *DegenerateSegmentError) Is(target error) bool {
	return target == ErrDegenerateSegment
}
