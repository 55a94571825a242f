package geom

import "github.com/dmarsden-gvd/gvdfortune/point"

// Curve is anything that can report its height at a given x, satisfied by
// both Parabola and VArc.
type Curve interface {
	Y(x float64) float64
}

// PrepDraw samples a curve at samples evenly spaced x values between
// xStart and xEnd inclusive, for rendering an arc's extent as a polyline.
// samples < 2 is clamped to 2 so both endpoints are always present.
func PrepDraw(c Curve, xStart, xEnd float64, samples int) []point.Point {
	if samples < 2 {
		samples = 2
	}
	pts := make([]point.Point, samples)
	step := (xEnd - xStart) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := xStart + step*float64(i)
		pts[i] = point.New(x, c.Y(x))
	}
	return pts
}
