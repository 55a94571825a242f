// Package geom is the geometric kernel: pure functions over lines,
// parabolas, and V-shaped bisector arcs, used by the beachline and
// close-event predictor.
//
// A parabolic arc is the locus of points equidistant from a point site (the
// focus) and the current directrix. A V-shaped arc is the locus of points
// equidistant from a segment site's supporting line and the directrix,
// restricted to the half-plane above the directrix; it is piecewise linear,
// two rays meeting at an apex.
package geom

import (
	"math"

	"github.com/dmarsden-gvd/gvdfortune/numeric"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// Site is the minimal description of a site this package needs to compute
// bisectors and equidistant loci: either a point (Kind == types.SitePoint,
// only Point set) or a segment (Kind == types.SiteSegment, only A and B
// set, A the upper endpoint). Label identifies the originating input site,
// letting callers recognize when two arcs trace back to the same site.
type Site struct {
	Kind  types.SiteKind
	Label int
	Point point.Point
	A, B  point.Point
}

// DistanceToSite returns the distance from p to the nearest point of s: the
// Euclidean distance to Point for a point site, or the distance to the
// closest point on the clamped segment [A,B] for a segment site.
func DistanceToSite(p point.Point, s Site) float64 {
	return p.DistanceToPoint(NearestPointOnSite(p, s))
}

// DistanceToLine returns the distance from p to the nearest point of s: the
// Euclidean distance to Point for a point site, or the perpendicular
// distance to the segment's infinite supporting line (not clamped to its
// finite extent) for a segment site. Used where the underlying V-arc
// model, which is built from the line rather than the finite segment,
// needs an exact radius.
func DistanceToLine(p point.Point, s Site) float64 {
	if s.Kind == types.SitePoint {
		return p.DistanceToPoint(s.Point)
	}
	line := NewLine(s.A, s.B)
	dirLen := line.Dir.DotProduct(line.Dir)
	if dirLen == 0 {
		return p.DistanceToPoint(s.A)
	}
	return numeric.Abs(line.SignedDistance(p)) / math.Sqrt(dirLen)
}

// NearestPointOnSite returns the point of s closest to p: Point itself for
// a point site, or the closest point on the clamped segment [A,B] for a
// segment site.
func NearestPointOnSite(p point.Point, s Site) point.Point {
	if s.Kind == types.SitePoint {
		return s.Point
	}
	dir := s.B.Sub(s.A)
	lenSq := dir.DotProduct(dir)
	if lenSq == 0 {
		return s.A
	}
	t := p.Sub(s.A).DotProduct(dir) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.A.Translate(point.New(dir.X()*t, dir.Y()*t))
}
