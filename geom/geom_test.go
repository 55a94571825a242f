package geom

import (
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/stretchr/testify/assert"
)

func TestDistanceToSite_point(t *testing.T) {
	s := pointSite(3, 4)
	assert.InDelta(t, 5, DistanceToSite(point.New(0, 0), s), 1e-9)
}

func TestDistanceToSite_segment_clampsToEndpoint(t *testing.T) {
	s := segSite(0, 0, 0, 10)
	// (5, 20) projects past the upper endpoint (0,10), so the distance is
	// to that endpoint: sqrt(5^2 + 10^2).
	assert.InDelta(t, 11.180339887498949, DistanceToSite(point.New(5, 20), s), 1e-9)
}

func TestDistanceToLine_segment_ignoresFiniteExtent(t *testing.T) {
	s := segSite(0, 0, 0, 10)
	// (5, 20) is beyond the segment's upper endpoint, but DistanceToLine
	// measures to the infinite line x=0, not the clamped endpoint.
	assert.InDelta(t, 5, DistanceToLine(point.New(5, 20), s), 1e-9)
}

func TestNearestPointOnSite_point(t *testing.T) {
	s := pointSite(3, 4)
	got := NearestPointOnSite(point.New(0, 0), s)
	assert.InDelta(t, 3, got.X(), 1e-9)
	assert.InDelta(t, 4, got.Y(), 1e-9)
}

func TestNearestPointOnSite_segment_midpoint(t *testing.T) {
	s := segSite(-5, 0, 5, 0)
	got := NearestPointOnSite(point.New(0, 3), s)
	assert.InDelta(t, 0, got.X(), 1e-9)
	assert.InDelta(t, 0, got.Y(), 1e-9)
}
