package types

import "fmt"

// NodeKind distinguishes the three variants of a beachline node.
type NodeKind uint8

// Valid values for NodeKind.
const (
	// NodeArcPara is a leaf node: a parabolic arc traced by a point site.
	NodeArcPara NodeKind = iota

	// NodeArcV is a leaf node: a V-shaped arc traced by a segment site.
	NodeArcV

	// NodeEdge is an internal node: the breakpoint between two neighboring
	// arcs.
	NodeEdge
)

// String converts a NodeKind constant into its string representation.
//
// Panics if kind is not one of the defined constants.
func (k NodeKind) String() string {
	switch k {
	case NodeArcPara:
		return "NodeArcPara"
	case NodeArcV:
		return "NodeArcV"
	case NodeEdge:
		return "NodeEdge"
	default:
		panic(fmt.Errorf("unsupported NodeKind: %d", k))
	}
}

// IsArc reports whether kind is a leaf (arc) variant.
func (k NodeKind) IsArc() bool {
	return k == NodeArcPara || k == NodeArcV
}
