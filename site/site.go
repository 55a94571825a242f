// Package site defines the two kinds of input sites a sweep consumes: point
// sites and segment sites.
package site

import (
	"errors"
	"fmt"

	"github.com/dmarsden-gvd/gvdfortune/point"
)

// ErrHorizontalSegment is returned by NewSegmentSite when both endpoints
// share the same y coordinate. A horizontal segment cannot be oriented by
// the a.y > b.y invariant the rest of the algorithm relies on, so it is
// rejected at construction rather than silently reordered.
var ErrHorizontalSegment = errors.New("site: horizontal segment")

// PointSite is a single point the sweep must account for.
type PointSite struct {
	Label int
	Point point.Point
}

// NewPointSite constructs a PointSite.
func NewPointSite(label int, p point.Point) PointSite {
	return PointSite{Label: label, Point: p}
}

// SegmentSite is an open line segment the sweep must account for, with
// endpoint A strictly above endpoint B (A.Y() > B.Y()).
type SegmentSite struct {
	Label int
	A, B  point.Point
}

// NewSegmentSite constructs a SegmentSite from two endpoints in either
// order, reordering them so that A is the upper endpoint. Returns
// ErrHorizontalSegment if p1 and p2 share a y coordinate.
func NewSegmentSite(label int, p1, p2 point.Point) (SegmentSite, error) {
	if p1.Y() == p2.Y() {
		return SegmentSite{}, fmt.Errorf("%w: label %d at y=%g", ErrHorizontalSegment, label, p1.Y())
	}
	if p1.Y() > p2.Y() {
		return SegmentSite{Label: label, A: p1, B: p2}, nil
	}
	return SegmentSite{Label: label, A: p2, B: p1}, nil
}
