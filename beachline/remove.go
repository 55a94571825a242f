package beachline

import "github.com/dmarsden-gvd/gvdfortune/point"

// Remove deletes arcNode (an arc that has shrunk to nothing at a close
// event) from the tree, splicing its sibling up into its parent's place.
// Both of arcNode's flanking edges (prevEdge and nextEdge; one of them is
// always arcNode's direct parent) are finished at closePoint and returned
// as committed edges, skipping any that are degenerate (sameSite) or
// already overridden. The edge that was NOT arcNode's direct parent
// persists in the tree as the new merged breakpoint: after its own prior
// span is committed, its EdgeStart is moved to closePoint so it continues
// tracing the merged breakpoint from there.
func Remove(root *Node, arcNode *Node, closePoint point.Point) (newRoot *Node, committed []CommittedEdge, survivor *Node) {
	parent := arcNode.Parent
	if parent == nil {
		return root, nil, nil
	}

	prevE := PrevEdge(arcNode)
	nextE := NextEdge(arcNode)

	for _, e := range []*Node{prevE, nextE} {
		if e == nil || e.Overridden || sameSite(e) {
			continue
		}
		committed = append(committed, CommittedEdge{Label: e.Label, Start: e.EdgeStart, End: closePoint})
	}

	grandparent := parent.Parent
	var sibling *Node
	if parent.Left == arcNode {
		sibling = parent.Right
	} else {
		sibling = parent.Left
	}
	sibling.Parent = grandparent
	if grandparent != nil {
		if grandparent.Left == parent {
			grandparent.Left = sibling
		} else {
			grandparent.Right = sibling
		}
	}

	newRoot = root
	if grandparent == nil {
		newRoot = sibling
	}

	survivor = nextE
	if parent == nextE {
		survivor = prevE
	}

	if survivor != nil {
		survivor.EdgeStart = closePoint
	}

	return newRoot, committed, survivor
}
