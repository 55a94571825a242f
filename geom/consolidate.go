package geom

import "github.com/dmarsden-gvd/gvdfortune/point"

// Consolidate drops candidate points that coincide with pivotX (they lie
// exactly on the breakpoint currently being resolved and are an artifact
// of the algebra, not a genuine second candidate) and, among whatever
// remains on each side of pivotX, collapses a near-tangent pair into a
// single point when the two are closer together than thresh: a tangency
// the quadratic solver reports as two roots that are really one.
func Consolidate(points []point.Point, pivotX, thresh float64) []point.Point {
	var left, right []point.Point
	for _, p := range points {
		switch {
		case p.X() < pivotX:
			left = append(left, p)
		case p.X() > pivotX:
			right = append(right, p)
		}
	}

	result := make([]point.Point, 0, 2)
	result = append(result, collapseSide(left, thresh)...)
	result = append(result, collapseSide(right, thresh)...)
	return result
}

func collapseSide(side []point.Point, thresh float64) []point.Point {
	switch len(side) {
	case 0:
		return nil
	case 1:
		return side
	case 2:
		if side[0].DistanceToPoint(side[1]) < thresh {
			return side[:1]
		}
		return side
	default:
		return side
	}
}
