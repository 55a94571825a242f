package geom

import (
	"errors"
	"sort"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// ErrNoIntercept is returned by GetIntercept when the two arcs' curves do
// not meet for the given directrix, a geometric impossibility that
// signals a bug in how the beachline reached this pair of neighbors.
var ErrNoIntercept = errors.New("geom: arcs do not intersect")

// GetIntercept returns the breakpoint between the arcs generated by left
// and right at the current directrix. Point sites produce parabolic arcs,
// segment sites produce V-arcs; the three site-kind combinations dispatch
// to ppIntersect, vvIntersect, or vpIntersect respectively.
//
// When more than one candidate survives, the breakpoint is the one with
// the greatest y: sweeping downward, the lower candidate is the
// intersection the beachline has already swept past. The one exception is
// a point site whose focus coincides with the neighboring segment's lower
// endpoint B: there the candidate with the lowest y is taken.
func GetIntercept(left, right Site, directrix, epsilon float64) (point.Point, error) {
	var xs []float64
	var eval func(x float64) float64
	preferLower := false

	switch {
	case left.Kind == types.SitePoint && right.Kind == types.SitePoint:
		lp := CreateParabola(left.Point, directrix)
		rp := CreateParabola(right.Point, directrix)
		xs = ppIntersect(lp, rp, epsilon)
		eval = lp.Y

	case left.Kind == types.SiteSegment && right.Kind == types.SiteSegment:
		lv := CreateV(left.A, left.B, directrix)
		rv := CreateV(right.A, right.B, directrix)
		xs = vvIntersect(lv, rv, epsilon)
		eval = lv.Y

	case left.Kind == types.SiteSegment && right.Kind == types.SitePoint:
		lv := CreateV(left.A, left.B, directrix)
		rp := CreateParabola(right.Point, directrix)
		xs = vpIntersect(lv, rp, epsilon)
		eval = lv.Y
		xs = coincidentFocusFallback(xs, lv, right.Point, left, epsilon)
		preferLower = right.Point.Eq(left.B, epsilon)

	default: // left point, right segment
		lp := CreateParabola(left.Point, directrix)
		rv := CreateV(right.A, right.B, directrix)
		xs = vpIntersect(rv, lp, epsilon)
		eval = lp.Y
		xs = coincidentFocusFallback(xs, rv, left.Point, right, epsilon)
		preferLower = left.Point.Eq(right.B, epsilon)
	}

	if len(xs) == 0 {
		return point.Point{}, ErrNoIntercept
	}

	sort.Float64s(xs)
	best := xs[0]
	bestY := eval(best)
	for _, x := range xs[1:] {
		y := eval(x)
		if preferLower {
			if y < bestY {
				best, bestY = x, y
			}
			continue
		}
		if y > bestY {
			best, bestY = x, y
		}
	}
	return point.New(best, bestY), nil
}

// coincidentFocusFallback covers the case vpIntersect's own P≈0 fallback
// does not: the point site's focus lands exactly on one of the segment's
// endpoints even though the parabola itself is not directrix-degenerate.
// The ordinary quadratic substitution can then miss the intersection (the
// V's apex sits right at the parabola's vertex), so when the general
// intersection comes back empty, fall back to intersecting the V-arc with
// the horizontal line through the focus directly.
func coincidentFocusFallback(xs []float64, v VArc, focus point.Point, segment Site, epsilon float64) []float64 {
	if len(xs) != 0 {
		return xs
	}
	if !focus.Eq(segment.A, epsilon) && !focus.Eq(segment.B, epsilon) {
		return xs
	}
	line := Line{P: focus, Dir: point.New(1, 0)}
	return vbIntersect(v, line, epsilon)
}
