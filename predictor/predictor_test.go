package predictor

import (
	"math"
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/options"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointSite(x, y float64) geom.Site {
	return geom.Site{Kind: types.SitePoint, Point: point.New(x, y)}
}

func segmentSite(ax, ay, bx, by float64) geom.Site {
	a, b := point.New(ax, ay), point.New(bx, by)
	if a.Y() < b.Y() {
		a, b = b, a
	}
	return geom.Site{Kind: types.SiteSegment, A: a, B: b}
}

func TestPredict_threeConvergingPoints_predictsCircumcenter(t *testing.T) {
	left := pointSite(-10, 0)
	center := pointSite(0, 10)
	right := pointSite(10, 0)
	result, ok := Predict(left, center, right, 0, options.DefaultTolerances(), 1e-9)
	require.True(t, ok)
	assert.InDelta(t, 0, result.Point.X(), 1e-6)
}

func TestPredict_threeDivergingPoints_noEvent(t *testing.T) {
	left := pointSite(-10, 0)
	center := pointSite(0, -10)
	right := pointSite(10, 0)
	_, ok := Predict(left, center, right, 0, options.DefaultTolerances(), 1e-9)
	assert.False(t, ok)
}

// A point symmetric about the segment's line and the two flanking points
// is, by construction, exactly equidistant from all three sites: left and
// right at (+-10, 0), and a vertical segment along x=20 tall enough to
// contain the candidate's projection. Distance to either point and to the
// segment's line all equal 20 at (0, +-sqrt(300)), so this is a genuine
// close event the general path must accept, not the masked-by-!ok case a
// prior version of this test left unverified.
func TestPredict_segmentCenter_predictsEquidistantPoint(t *testing.T) {
	left := pointSite(-10, 0)
	center := segmentSite(20, 40, 20, -40)
	right := pointSite(10, 0)
	directrix := -1.0

	result, ok := Predict(left, center, right, directrix, options.DefaultTolerances(), 1e-9)
	require.True(t, ok)
	assert.InDelta(t, 0, result.Point.X(), 1e-6)
	// Two mirrored candidates on the y-axis, both genuinely equidistant
	// from all three sites, are visible against the segment's extent;
	// either is a valid close event.
	assert.InDelta(t, 17.320508075688775, math.Abs(result.Point.Y()), 1e-3)
	assert.LessOrEqual(t, result.Y, directrix+options.DefaultTolerances().CloseMergeSlack+1e-9)
}
