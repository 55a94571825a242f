package event

import "github.com/dmarsden-gvd/gvdfortune/point"

// CloseEvent fires when an arc shrinks to nothing: three neighboring
// arcs' breakpoints meet at Point, with the sweep line reaching Y (at or
// below Point.Y by the predicted arc's radius).
type CloseEvent struct {
	ArcID int
	Point point.Point
	Y     float64
	seq   int64
}
