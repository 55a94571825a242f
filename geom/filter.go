package geom

import "github.com/dmarsden-gvd/gvdfortune/point"

// FilterVisiblePoints discards candidate equidistant points that do not
// project onto the actual extent of seg (they are equidistant from seg's
// supporting line, but the nearest point of that line is an extension
// beyond one of seg's endpoints, which is not geometrically meaningful:
// the segment's finite extent, not its infinite line, is the real site).
func FilterVisiblePoints(points []point.Point, seg Site) []point.Point {
	d := seg.B.Sub(seg.A)
	lenSq := d.DotProduct(d)
	if lenSq == 0 {
		return points
	}
	visible := points[:0:0]
	for _, p := range points {
		t := p.Sub(seg.A).DotProduct(d) / lenSq
		if t >= 0 && t <= 1 {
			visible = append(visible, p)
		}
	}
	return visible
}

// FilterBySiteAssociation discards candidates whose nearest-site
// classification is not exactly {left, center, right}: a genuine
// equidistant point for this triple is tied for nearest among all three,
// within epsilon. Equidistant's algebra can produce roots that solve one
// pairwise equation (or the wrong branch of a segment-pair equation)
// without actually being the closest point on all three sites; those are
// spurious and must not reach the diff stage.
func FilterBySiteAssociation(points []point.Point, left, center, right Site, epsilon float64) []point.Point {
	associated := points[:0:0]
	for _, p := range points {
		dl := DistanceToLine(p, left)
		dc := DistanceToLine(p, center)
		dr := DistanceToLine(p, right)
		m := dl
		if dc < m {
			m = dc
		}
		if dr < m {
			m = dr
		}
		if dl-m <= epsilon && dc-m <= epsilon && dr-m <= epsilon {
			associated = append(associated, p)
		}
	}
	return associated
}
