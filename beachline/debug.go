//go:build debug

package beachline

import (
	"fmt"
	"strings"

	"github.com/dmarsden-gvd/gvdfortune/types"
)

func height(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func label(n *Node) string {
	if n == nil {
		return "_"
	}
	switch n.Kind {
	case types.NodeArcPara:
		return fmt.Sprintf("%dP", n.Site.Label)
	case types.NodeArcV:
		return fmt.Sprintf("%dV", n.Site.Label)
	default:
		return fmt.Sprintf("%dE", n.Label)
	}
}

func row(nodes []*Node) []*Node {
	var next []*Node
	for _, n := range nodes {
		if n == nil {
			next = append(next, nil, nil)
			continue
		}
		next = append(next, n.Left, n.Right)
	}
	return next
}

// PrintTree renders the beachline as a plain-text tree, one row per depth
// level with node labels separated by spaces (missing nodes shown as "_"),
// for interactive debugging.
func PrintTree(root *Node) string {
	var b strings.Builder
	level := []*Node{root}
	for d := 0; d < height(root); d++ {
		for _, n := range level {
			fmt.Fprintf(&b, "%s ", label(n))
		}
		b.WriteByte('\n')
		level = row(level)
	}
	return b.String()
}
