package geom

import "github.com/dmarsden-gvd/gvdfortune/point"

// Line is an infinite line through P in direction Dir. Dir need not be a
// unit vector.
type Line struct {
	P   point.Point
	Dir point.Point
}

// NewLine returns the line through p1 and p2, directed from p1 to p2.
func NewLine(p1, p2 point.Point) Line {
	return Line{P: p1, Dir: p2.Sub(p1)}
}

// At returns the point P + t*Dir.
func (l Line) At(t float64) point.Point {
	return l.P.Translate(point.New(l.Dir.X()*t, l.Dir.Y()*t))
}

// SignedDistance returns a signed multiple of the distance from p to l: the
// cross product of l's direction with the vector from l.P to p. Its sign
// flips across the line and is zero on it; dividing by Dir's length gives
// the true signed distance, which callers that only need a side test can
// skip.
func (l Line) SignedDistance(p point.Point) float64 {
	return l.Dir.CrossProduct(p.Sub(l.P))
}

// IntersectLines returns the intersection of two infinite lines. The second
// return value is false when the lines are parallel (including coincident),
// judged by comparing the cross product of their directions to epsilon.
//
// Grounded on the parametric cross-product technique used for segment
// intersection: solve P1 + t*Dir1 == P2 + u*Dir2 for t via Cramer's rule,
// dropping the bounds check that confines a segment intersection to
// [0,1] on both parameters since both lines here are unbounded.
func IntersectLines(l1, l2 Line, epsilon float64) (point.Point, bool) {
	denominator := l1.Dir.CrossProduct(l2.Dir)
	if denominator >= -epsilon && denominator <= epsilon {
		return point.Point{}, false
	}
	diff := l2.P.Sub(l1.P)
	t := diff.CrossProduct(l2.Dir) / denominator
	return l1.At(t), true
}
