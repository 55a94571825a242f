package beachline

import (
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// arrivalPoint is the point at which site first becomes the nearest site
// to the sweep line: the point itself for a point site, or the upper
// endpoint for a segment site (a segment cannot become relevant to the
// beachline before the sweep reaches its top).
func arrivalPoint(site geom.Site) point.Point {
	if site.Kind == types.SitePoint {
		return site.Point
	}
	return site.A
}

// InsertResult describes what Insert changed: the new arc, and, unless
// the tree was empty, the arc it split (whose pending close event the
// caller must cancel) and the two fresh copies of it now flanking the new
// arc (whose close events the caller should predict afresh, since their
// neighbors have changed).
type InsertResult struct {
	NewArc             *Node
	Split              *Node
	LeftCopy, RightCopy *Node
}

// Insert adds a new arc for site into the tree rooted at root, splitting
// whichever existing arc currently sits above site's arrival point. Two
// new edge nodes are created, both starting at the arrival point;
// nextLabel supplies increasing edge labels and nextArcID increasing arc
// IDs for the two copies of the split arc. Returns the (possibly new)
// root and a description of what changed.
//
// An empty tree (root == nil) becomes a single arc with no edges.
func Insert(root *Node, site geom.Site, arcID int, nextLabel, nextArcID func() int, directrix, epsilon float64) (*Node, InsertResult, error) {
	newArc := NewArcNode(site, arcID)
	if root == nil {
		return newArc, InsertResult{NewArc: newArc}, nil
	}

	vertex := arrivalPoint(site)

	var parent *Node
	node := root
	fromLeft := false
	for node.Kind == types.NodeEdge {
		leftArc := lastArc(node.Left)
		rightArc := firstArc(node.Right)
		pt, err := geom.GetIntercept(leftArc.Site, rightArc.Site, directrix, epsilon)
		if err != nil {
			return root, InsertResult{}, err
		}
		parent = node
		if vertex.X() < pt.X() {
			node = node.Left
			fromLeft = true
		} else {
			node = node.Right
			fromLeft = false
		}
	}

	oldArc := node

	// A point site arriving exactly at an existing breakpoint's EdgeStart
	// (most commonly: a polygon vertex's point event landing on the
	// segment endpoint that started an adjacent breakpoint in the same
	// sweep step) makes that existing breakpoint's future termination
	// redundant: the two new edges created below already start at this
	// same vertex and will carry its role forward.
	if site.Kind == types.SitePoint {
		if prevEdge := PrevEdge(oldArc); prevEdge != nil && prevEdge.EdgeStart.Eq(vertex, epsilon) {
			prevEdge.MarkOverridden()
		}
		if nextEdge := NextEdge(oldArc); nextEdge != nil && nextEdge.EdgeStart.Eq(vertex, epsilon) {
			nextEdge.MarkOverridden()
		}
	}

	leftCopy := NewArcNode(oldArc.Site, nextArcID())
	rightCopy := NewArcNode(oldArc.Site, nextArcID())

	rightEdge := NewEdgeNode(vertex, nextLabel())
	rightEdge.Left, rightEdge.Right = newArc, rightCopy
	newArc.Parent, rightCopy.Parent = rightEdge, rightEdge

	leftEdge := NewEdgeNode(vertex, nextLabel())
	leftEdge.Left, leftEdge.Right = leftCopy, rightEdge
	leftCopy.Parent, rightEdge.Parent = leftEdge, leftEdge

	result := InsertResult{NewArc: newArc, Split: oldArc, LeftCopy: leftCopy, RightCopy: rightCopy}

	if parent == nil {
		return leftEdge, result, nil
	}
	leftEdge.Parent = parent
	if fromLeft {
		parent.Left = leftEdge
	} else {
		parent.Right = leftEdge
	}
	return root, result, nil
}
