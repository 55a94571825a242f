package beachline

import "github.com/dmarsden-gvd/gvdfortune/point"

// CommittedEdge is a finished diagram edge: a breakpoint that existed from
// Start until a close event merging its two flanking arcs resolved it at
// End. Breakpoints still active when the sweep stops are not committed;
// the final sampling pass returns arcs only.
type CommittedEdge struct {
	Label int
	Start point.Point
	End   point.Point
}

// LeftArc returns the arc immediately left of edge (the rightmost leaf of
// its left subtree).
func LeftArc(edge *Node) *Node { return lastArc(edge.Left) }

// RightArc returns the arc immediately right of edge (the leftmost leaf
// of its right subtree).
func RightArc(edge *Node) *Node { return firstArc(edge.Right) }

// sameSite reports whether the two arcs flanking an edge both trace back
// to the same input site: such an edge has zero width by construction
// (it is the seam where a segment site's own V-arc was split on
// insertion) and carries no diagram information, so it is never
// committed.
func sameSite(edge *Node) bool {
	left := lastArc(edge.Left)
	right := firstArc(edge.Right)
	if left == nil || right == nil {
		return false
	}
	return left.Site.Label == right.Site.Label
}
