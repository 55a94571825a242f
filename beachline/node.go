// Package beachline implements the beachline: a binary tree whose leaves
// are arcs (the locus currently closest to the sweep line for some site)
// and whose internal nodes are edges (breakpoints between two
// neighboring arcs). As the sweep line advances, arcs are inserted and
// removed and edges are committed into finished diagram edges.
package beachline

import (
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// Node is either an arc leaf or an edge internal node, distinguished by
// Kind. Arc fields (Site, ID) are meaningful only when Kind.IsArc();
// edge fields (EdgeStart, Label) only when Kind == types.NodeEdge.
type Node struct {
	Kind types.NodeKind

	Site geom.Site // arc only
	ID   int       // arc only: identifies this arc's pending close event

	EdgeStart  point.Point // edge only: where this edge began tracing
	Label      int         // edge only: identifies the finished edge once committed
	Overridden bool        // edge only: see MarkOverridden

	Parent, Left, Right *Node
}

// NewArcNode creates a leaf node for site, assigning it id for close-event
// bookkeeping.
func NewArcNode(site geom.Site, id int) *Node {
	kind := types.NodeArcPara
	if site.Kind == types.SiteSegment {
		kind = types.NodeArcV
	}
	return &Node{Kind: kind, Site: site, ID: id}
}

// NewEdgeNode creates an internal breakpoint node tracing from start.
func NewEdgeNode(start point.Point, label int) *Node {
	return &Node{Kind: types.NodeEdge, EdgeStart: start, Label: label}
}

// IsLeaf reports whether n is an arc (as opposed to an edge).
func (n *Node) IsLeaf() bool {
	return n.Kind.IsArc()
}

// MarkOverridden flags an edge node whose fate has been subsumed by a
// later insertion sharing its EdgeStart (see Insert's coincident-vertex
// handling): an overridden edge traced no real diagram geometry of its
// own and must never be committed when it is later removed.
func (n *Node) MarkOverridden() {
	n.Overridden = true
}
