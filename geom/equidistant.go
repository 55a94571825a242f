package geom

import (
	"github.com/dmarsden-gvd/gvdfortune/numeric"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// Equidistant returns the points equidistant from all three sites (distance
// to a segment site meaning perpendicular distance to its supporting line,
// not the clamped distance to the segment itself; visibility against the
// segment's actual extent is a separate filtering step).
//
// The three squared-distance functions are each a quadratic form in the
// plane's coordinates: a point site gives a circle (P-F)·(P-F), a segment
// site gives a perfect square (n·(P-A))^2. Pairwise differences of two
// such forms cancel their quadratic terms whenever both are of the same
// kind: two point sites give an ordinary perpendicular-bisector line, and
// two segment sites give a pair of lines (n1·(P-A1) = +/- n2·(P-A2)). A
// point/segment pairwise difference stays a genuine quadratic (a
// parabola), so it is never used to build a bisector line; it is only
// ever the last equation solved, along a line already known to satisfy
// the other two sites.
//
// This yields, depending on how many of the three sites are segments:
// 0 -> the two point-point bisector lines, intersected once (0 or 1
// points); 1 -> the point-point bisector line, solved against the
// point/segment quadratic (0, 1, or 2 points); 2 -> the segment/segment
// pair's two lines, each solved against a point/segment quadratic (0 to
// 4 points); 3 -> two segment pairs' lines, cross-intersected pairwise
// (0 to 4 points).
func Equidistant(s1, s2, s3 Site, epsilon float64) []point.Point {
	segCount := 0
	for _, s := range []Site{s1, s2, s3} {
		if s.Kind == types.SiteSegment {
			segCount++
		}
	}

	switch segCount {
	case 0:
		return equidistantPPP(s1, s2, s3, epsilon)
	case 1:
		p, q, seg := reorderOneSegment(s1, s2, s3)
		return equidistantPPS(p, q, seg, epsilon)
	case 2:
		p, r1, r2 := reorderTwoSegments(s1, s2, s3)
		return equidistantPSS(p, r1, r2, epsilon)
	default:
		return equidistantSSS(s1, s2, s3, epsilon)
	}
}

func reorderOneSegment(s1, s2, s3 Site) (p, q, seg Site) {
	sites := [3]Site{s1, s2, s3}
	for i, s := range sites {
		if s.Kind == types.SiteSegment {
			others := append([]Site{}, sites[:i]...)
			others = append(others, sites[i+1:]...)
			return others[0], others[1], s
		}
	}
	return s1, s2, s3
}

func reorderTwoSegments(s1, s2, s3 Site) (p, r1, r2 Site) {
	sites := [3]Site{s1, s2, s3}
	for i, s := range sites {
		if s.Kind == types.SitePoint {
			others := append([]Site{}, sites[:i]...)
			others = append(others, sites[i+1:]...)
			return s, others[0], others[1]
		}
	}
	return s1, s2, s3
}

func equidistantPPP(s1, s2, s3 Site, epsilon float64) []point.Point {
	l1 := pointBisectorLine(s1.Point, s2.Point)
	l2 := pointBisectorLine(s1.Point, s3.Point)
	pt, ok := IntersectLines(l1, l2, epsilon)
	if !ok {
		return nil
	}
	return []point.Point{pt}
}

func equidistantPPS(p, q, seg Site, epsilon float64) []point.Point {
	bisector := pointBisectorLine(p.Point, q.Point)
	return solveAlongLine(bisector, p, seg, epsilon)
}

func equidistantPSS(p, r1, r2 Site, epsilon float64) []point.Point {
	var candidates []point.Point
	for _, line := range segmentPairLines(r1, r2) {
		candidates = append(candidates, solveAlongLine(line, p, r1, epsilon)...)
	}
	return candidates
}

func equidistantSSS(s1, s2, s3 Site, epsilon float64) []point.Point {
	linesA := segmentPairLines(s1, s2)
	linesB := segmentPairLines(s1, s3)
	var candidates []point.Point
	for _, la := range linesA {
		for _, lb := range linesB {
			pt, ok := IntersectLines(la, lb, epsilon)
			if ok {
				candidates = append(candidates, pt)
			}
		}
	}
	return candidates
}

// pointBisectorLine returns the perpendicular bisector of p and q.
func pointBisectorLine(p, q point.Point) Line {
	mid := p.Midpoint(q)
	d := q.Sub(p)
	return Line{P: mid, Dir: point.New(-d.Y(), d.X())}
}

// segmentLineNormal returns a unit vector perpendicular to the segment's
// supporting line.
func segmentLineNormal(s Site) point.Point {
	d := s.B.Sub(s.A)
	return normalize(point.New(-d.Y(), d.X()))
}

// segmentPairLines returns the two lines along which two segment sites'
// supporting lines are equidistant: n1.(P-A1) = n2.(P-A2) and
// n1.(P-A1) = -n2.(P-A2).
func segmentPairLines(r1, r2 Site) []Line {
	n1 := segmentLineNormal(r1)
	n2 := segmentLineNormal(r2)
	c1 := n1.DotProduct(r1.A)
	c2 := n2.DotProduct(r2.A)

	minus := lineFromImplicit(n1.X()-n2.X(), n1.Y()-n2.Y(), c1-c2)
	plus := lineFromImplicit(n1.X()+n2.X(), n1.Y()+n2.Y(), c1+c2)
	return []Line{minus, plus}
}

// lineFromImplicit returns the line a*x + b*y = c.
func lineFromImplicit(a, b, c float64) Line {
	dir := point.New(-b, a)
	var p0 point.Point
	if a*a >= b*b {
		p0 = point.New(c/a, 0)
	} else {
		p0 = point.New(0, c/b)
	}
	return Line{P: p0, Dir: dir}
}

// squaredDistanceToSite is the squared Euclidean distance to a point site,
// or the squared perpendicular distance to a segment site's infinite
// supporting line.
func squaredDistanceToSite(p point.Point, s Site) float64 {
	if s.Kind == types.SitePoint {
		return p.DistanceSquaredToPoint(s.Point)
	}
	n := segmentLineNormal(s)
	f := n.DotProduct(p.Sub(s.A))
	return f * f
}

// solveAlongLine finds the points along line where s1 and s2 are
// equidistant, by fitting the quadratic that the difference of their
// squared-distance functions reduces to along the line (degree <= 2 in the
// line parameter, regardless of site kinds) from three samples, then
// solving it.
func solveAlongLine(line Line, s1, s2 Site, epsilon float64) []point.Point {
	diff := func(t float64) float64 {
		p := line.At(t)
		return squaredDistanceToSite(p, s1) - squaredDistanceToSite(p, s2)
	}
	f0, f1, f2 := diff(0), diff(1), diff(2)
	c0 := f0
	c1 := (-3*f0 + 4*f1 - f2) / 2
	c2 := (f0 - 2*f1 + f2) / 2

	roots := numeric.Quadratic(c2, c1, c0, epsilon)
	points := make([]point.Point, len(roots))
	for i, t := range roots {
		points[i] = line.At(t)
	}
	return points
}
