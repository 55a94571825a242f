// Package gvdfortune computes the generalized Voronoi diagram of a set of
// point and open line-segment sites using Fortune's sweep-line algorithm
// generalized to mixed site types.
//
// The sweep line moves from the top of the plane downward (decreasing y).
// The beachline (package beachline) tracks the locus of points equidistant
// between the sweep line and the nearest site; as the sweep line advances,
// parabolic arcs (point sites) and V-shaped arcs (segment sites) appear and
// disappear, and edges of the diagram are traced between them.
//
// Subpackages:
//
//   - point:     2D point/vector primitives
//   - site:      point and segment site types
//   - geom:      parabola, V-arc, and bisector intersection geometry
//   - beachline: the arc/edge binary tree and its navigation primitives
//   - event:     site and close events, and the close-event priority queue
//   - predictor: close-event detection for triples of adjacent arcs
//   - sweep:     the driver loop tying the above together
//   - ingest:    reading polygon files into point and segment sites
//   - ioformat:  writing the edge, beachline, polygon, and close-event files
//   - options:   functional options for tolerances and epsilon values
//
// See the package-level documentation for beachline and sweep for the shape
// of a typical run.
package gvdfortune

func init() {
	logDebugf("gvdfortune debug logging enabled")
}
