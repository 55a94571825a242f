package geom

import (
	"math"

	"github.com/dmarsden-gvd/gvdfortune/numeric"
	"github.com/dmarsden-gvd/gvdfortune/point"
)

// VArc is the locus of points equidistant from a segment site's supporting
// line and the horizontal directrix, restricted to y >= Directrix. It is
// piecewise linear: two rays, LeftDir and RightDir, both pointing away from
// the directrix (non-negative Y), meeting at Apex. RightDir.X() >= 0 is
// used for x >= Apex.X(), LeftDir.X() <= 0 for x <= Apex.X().
type VArc struct {
	Apex     point.Point
	LeftDir  point.Point
	RightDir point.Point
}

func normalize(p point.Point) point.Point {
	length := math.Hypot(p.X(), p.Y())
	if length == 0 {
		return p
	}
	return point.New(p.X()/length, p.Y()/length)
}

// CreateV builds the V-arc for a segment site's supporting line, swept by a
// horizontal directrix. The apex is where the line crosses the directrix;
// the two rays are the angle bisectors between the line and the directrix
// at that crossing, since a point equidistant from two intersecting lines
// lies on one of their angle bisectors.
func CreateV(a, b point.Point, directrix float64) VArc {
	dir := b.Sub(a)
	t := (directrix - a.Y()) / dir.Y()
	apex := point.New(a.X()+dir.X()*t, directrix)

	u := normalize(dir)
	h := point.New(1, 0)
	b1 := normalize(u.Add(h))
	b2 := normalize(u.Sub(h))

	candidates := []point.Point{b1, b1.Negate(), b2, b2.Negate()}
	var left, right point.Point
	haveLeft, haveRight := false, false
	for _, c := range candidates {
		if c.Y() < 0 {
			continue
		}
		if c.X() <= 0 && !haveLeft {
			left, haveLeft = c, true
		}
		if c.X() >= 0 && !haveRight {
			right, haveRight = c, true
		}
	}
	return VArc{Apex: apex, LeftDir: left, RightDir: right}
}

// Y evaluates the V-arc at x, using the ray on the side of the apex that x
// falls on.
func (v VArc) Y(x float64) float64 {
	d := v.RightDir
	if x < v.Apex.X() {
		d = v.LeftDir
	}
	if d.X() == 0 {
		return v.Apex.Y()
	}
	return v.Apex.Y() + d.Y()*(x-v.Apex.X())/d.X()
}

// rightLine and leftLine return the infinite line carrying the V-arc's
// right and left ray respectively.
func (v VArc) rightLine() Line { return Line{P: v.Apex, Dir: v.RightDir} }
func (v VArc) leftLine() Line  { return Line{P: v.Apex, Dir: v.LeftDir} }

// vvIntersect returns the x coordinates at which the two V-arcs meet: each
// of left's two ray lines is intersected with each of right's, and an
// intersection is kept when its x lies between left's apex and right's
// apex (within epsilon). The caller (the breakpoint resolver) is
// responsible for picking among however many candidates come back.
func vvIntersect(left, right VArc, epsilon float64) []float64 {
	var xs []float64
	pairs := []struct {
		l, r Line
	}{
		{left.rightLine(), right.leftLine()},
		{left.rightLine(), right.rightLine()},
		{left.leftLine(), right.leftLine()},
		{left.leftLine(), right.rightLine()},
	}
	for _, pr := range pairs {
		pt, ok := IntersectLines(pr.l, pr.r, epsilon)
		if !ok {
			continue
		}
		if pt.X() >= left.Apex.X()-epsilon && pt.X() <= right.Apex.X()+epsilon {
			xs = append(xs, pt.X())
		}
	}
	return xs
}

// vpIntersect returns the x coordinates at which a V-arc and a parabola
// meet, substituting each of the V-arc's two ray lines into the
// parabola's equation and keeping roots that fall within that ray's
// domain.
func vpIntersect(v VArc, pb Parabola, epsilon float64) []float64 {
	if numeric.FloatEquals(pb.P, 0, epsilon) {
		// The parabola's focus sits within epsilon of the directrix: its
		// vertex form divides by a near-zero P, which is numerically
		// unreliable. In that limit the parabola has collapsed onto the
		// vertical line through its focus, so fall back to intersecting
		// the V-arc with that line directly.
		degenerate := Line{P: point.New(pb.H, pb.K), Dir: point.New(0, 1)}
		return vbIntersect(v, degenerate, epsilon)
	}

	var xs []float64
	branches := []struct {
		dir      point.Point
		inDomain func(x float64) bool
	}{
		{v.RightDir, func(x float64) bool { return x >= v.Apex.X()-epsilon }},
		{v.LeftDir, func(x float64) bool { return x <= v.Apex.X()+epsilon }},
	}
	for _, br := range branches {
		if br.dir.X() == 0 {
			continue
		}
		m := br.dir.Y() / br.dir.X()
		// line: y = v.Apex.Y() + m*(x - v.Apex.X())
		// parabola: y = (x-H)^2/(4P) + K
		// (x-H)^2/(4P) + K - v.Apex.Y() - m*(x-v.Apex.X()) = 0
		a := 1 / (4 * pb.P)
		bCoef := -2*pb.H/(4*pb.P) - m
		c := pb.H*pb.H/(4*pb.P) + pb.K - v.Apex.Y() + m*v.Apex.X()
		for _, x := range numeric.Quadratic(a, bCoef, c, epsilon) {
			if br.inDomain(x) {
				xs = append(xs, x)
			}
		}
	}
	return xs
}

// vbIntersect returns the x coordinates at which a V-arc meets an
// arbitrary line of any direction. vpIntersect uses it with a vertical
// line when a point site's parabola is degenerate (P near zero), and
// coincidentFocusFallback with a horizontal line through the focus.
func vbIntersect(v VArc, l Line, epsilon float64) []float64 {
	var xs []float64
	branches := []Line{v.rightLine(), v.leftLine()}
	domains := []func(x float64) bool{
		func(x float64) bool { return x >= v.Apex.X()-epsilon },
		func(x float64) bool { return x <= v.Apex.X()+epsilon },
	}
	for i, branch := range branches {
		pt, ok := IntersectLines(branch, l, epsilon)
		if ok && domains[i](pt.X()) {
			xs = append(xs, pt.X())
		}
	}
	return xs
}
