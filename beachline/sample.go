package beachline

import (
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// SampledArc is one arc's visible extent at the moment the sweep stopped,
// ready for rendering: a polyline for a parabolic arc, or the three
// points (left end, apex, right end) of a V-arc's two rays.
type SampledArc struct {
	Label      int
	Points     []point.Point
	IsStraight bool
}

// fallbackMargin is half of how far past an arc's own reference point an
// unbounded end of the beachline (no neighboring arc on that side) is
// extended for sampling purposes: sampleArc extends by twice this value.
const fallbackMargin = 2.0

// SampleBeachline walks the tree rooted at root and returns every arc's
// visible extent at the given directrix, for rendering or for writing the
// beachline output file.
func SampleBeachline(root *Node, directrix float64, samples int, epsilon float64) []SampledArc {
	var out []SampledArc
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if !n.IsLeaf() {
			walk(n.Left)
			walk(n.Right)
			return
		}
		out = append(out, sampleArc(n, directrix, samples, epsilon))
	}
	walk(root)
	return out
}

func sampleArc(n *Node, directrix float64, samples int, epsilon float64) SampledArc {
	ref := arrivalPoint(n.Site)
	xl, xr := ref.X()-fallbackMargin*2, ref.X()+fallbackMargin*2

	if prev := PrevArc(n); prev != nil {
		if pt, err := geom.GetIntercept(prev.Site, n.Site, directrix, epsilon); err == nil {
			xl = pt.X()
		}
	}
	if next := NextArc(n); next != nil {
		if pt, err := geom.GetIntercept(n.Site, next.Site, directrix, epsilon); err == nil {
			xr = pt.X()
		}
	}
	if xl > xr {
		xl, xr = xr, xl
	}

	if n.Kind == types.NodeArcV {
		v := geom.CreateV(n.Site.A, n.Site.B, directrix)
		return SampledArc{
			Label:      n.Site.Label,
			IsStraight: true,
			Points: []point.Point{
				point.New(xl, v.Y(xl)),
				v.Apex,
				point.New(xr, v.Y(xr)),
			},
		}
	}

	pb := geom.CreateParabola(n.Site.Point, directrix)
	return SampledArc{
		Label:  n.Site.Label,
		Points: geom.PrepDraw(pb, xl, xr, samples),
	}
}
