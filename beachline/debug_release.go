//go:build !debug

package beachline

// PrintTree is a no-op outside of debug builds (see debug.go).
func PrintTree(root *Node) string { return "" }
