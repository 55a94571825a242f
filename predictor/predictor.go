// Package predictor computes close events: the point at which three
// neighboring beachline arcs' breakpoints will converge and the middle
// arc will vanish.
package predictor

import (
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/numeric"
	"github.com/dmarsden-gvd/gvdfortune/options"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// Result is a predicted close event: the middle arc is expected to
// vanish at Point once the sweep reaches Y.
type Result struct {
	Point point.Point
	Y     float64
}

// Predict returns the close event for the arc between left and right
// whose site is center, or ok == false if no such event exists (the three
// arcs' breakpoints are diverging, not converging).
//
// Three point sites are handled by the classic circumcenter test: the
// circle through all three degenerates to a close event only when left,
// center, and right turn clockwise as seen from center, which the sign
// of a cross product detects directly and more cheaply than solving the
// general equidistant system. Any combination involving a segment site
// falls back to that general system (geom.Equidistant), filtered to
// candidates actually visible to each segment's finite extent and
// consolidated to collapse near-tangent duplicate roots.
func Predict(left, center, right geom.Site, directrix float64, tol options.Tolerances, epsilon float64) (Result, bool) {
	if left.Kind == types.SitePoint && center.Kind == types.SitePoint && right.Kind == types.SitePoint {
		return predictPPP(left, center, right, epsilon)
	}
	return predictGeneral(left, center, right, directrix, tol, epsilon)
}

func predictPPP(left, center, right geom.Site, epsilon float64) (Result, bool) {
	// A close event exists only when left, center, right turn clockwise
	// in that order: center sits above the chord from left to right, so
	// the downward sweep pinches its arc shut against the circle through
	// all three. A counterclockwise or colinear triple never converges.
	v1 := center.Point.Sub(left.Point)
	v2 := right.Point.Sub(center.Point)
	if v1.CrossProduct(v2) >= 0 {
		return Result{}, false
	}
	pts := geom.Equidistant(left, center, right, epsilon)
	if len(pts) == 0 {
		return Result{}, false
	}
	circumcenter := pts[0]
	radius := circumcenter.DistanceToPoint(center.Point)
	return Result{Point: circumcenter, Y: circumcenter.Y() - radius}, true
}

func predictGeneral(left, center, right geom.Site, directrix float64, tol options.Tolerances, epsilon float64) (Result, bool) {
	candidates := geom.Equidistant(left, center, right, epsilon)
	for _, s := range []geom.Site{left, center, right} {
		if s.Kind == types.SiteSegment {
			candidates = geom.FilterVisiblePoints(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return Result{}, false
	}

	candidates = geom.FilterBySiteAssociation(candidates, left, center, right, epsilon)
	if len(candidates) == 0 {
		return Result{}, false
	}

	if len(candidates) > 2 {
		candidates = geom.Consolidate(candidates, referenceX(center), tol.Consolidate)
	}

	if len(candidates) == 1 {
		diff, r, ok := diffFor(left, center, right, candidates[0], directrix, tol, epsilon)
		if !ok || diff >= tol.DiffAccept {
			return Result{}, false
		}
		return Result{Point: candidates[0], Y: candidates[0].Y() - r}, true
	}

	bestIdx := -1
	bestDiff, bestRadius := 0.0, 0.0
	for i, c := range candidates {
		diff, r, ok := diffFor(left, center, right, c, directrix, tol, epsilon)
		if !ok {
			continue
		}
		if bestIdx == -1 || diff < bestDiff {
			bestIdx, bestDiff, bestRadius = i, diff, r
		}
	}
	if bestIdx == -1 || bestDiff >= tol.DiffAccept {
		return Result{}, false
	}
	best := candidates[bestIdx]
	return Result{Point: best, Y: best.Y() - bestRadius}, true
}

// radiusFor returns the distance from candidate to center attributed to
// the eventual close event: the plain distance to center's site, or, when
// center traces a V-arc, the smallest of its distances to all three
// sites' supporting lines (the V-arc model is built from those lines, not
// the finite segments).
func radiusFor(left, center, right geom.Site, candidate point.Point) float64 {
	if center.Kind == types.SitePoint {
		return geom.DistanceToSite(candidate, center)
	}
	r := geom.DistanceToLine(candidate, left)
	if d := geom.DistanceToLine(candidate, center); d < r {
		r = d
	}
	if d := geom.DistanceToLine(candidate, right); d < r {
		r = d
	}
	return r
}

// diffFor validates candidate as a close event: it computes the two
// breakpoints the beachline would show once the sweep reaches the
// candidate's predicted y and measures how far they have converged onto
// candidate itself. A small diff means the three arcs' breakpoints are
// genuinely meeting at candidate; a large one means the algebra found an
// equidistant point that the beachline will never actually reach in this
// configuration.
func diffFor(left, center, right geom.Site, candidate point.Point, directrix float64, tol options.Tolerances, epsilon float64) (diff, radius float64, ok bool) {
	radius = radiusFor(left, center, right, candidate)
	if radius <= epsilon {
		return 0, 0, false
	}
	yPrime := candidate.Y() - radius
	if yPrime > directrix+tol.CloseMergeSlack {
		return 0, 0, false
	}

	bp1, err := geom.GetIntercept(left, center, yPrime, epsilon)
	if err != nil {
		return 0, 0, false
	}
	bp2, err := geom.GetIntercept(center, right, yPrime, epsilon)
	if err != nil {
		return 0, 0, false
	}

	if center.Kind == types.SiteSegment {
		line := geom.NewLine(center.A, center.B)
		if line.SignedDistance(bp1)*line.SignedDistance(bp2) >= 0 {
			return 0, 0, false
		}
	}

	d1 := l1Distance(candidate, bp1)
	d2 := l1Distance(candidate, bp2)
	if d2 > d1 {
		d1 = d2
	}
	return d1, radius, true
}

func l1Distance(a, b point.Point) float64 {
	return numeric.Abs(a.X()-b.X()) + numeric.Abs(a.Y()-b.Y())
}

// referenceX is the x coordinate Consolidate pivots around: the arrival
// point's x for either site kind.
func referenceX(s geom.Site) float64 {
	if s.Kind == types.SitePoint {
		return s.Point.X()
	}
	return s.A.X()
}
