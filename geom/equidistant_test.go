package geom

import (
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointSite(x, y float64) Site {
	return Site{Kind: types.SitePoint, Point: point.New(x, y)}
}

func segSite(ax, ay, bx, by float64) Site {
	return Site{Kind: types.SiteSegment, A: point.New(ax, ay), B: point.New(bx, by)}
}

func TestEquidistant_threePoints_isCircumcenter(t *testing.T) {
	s1 := pointSite(0, 0)
	s2 := pointSite(4, 0)
	s3 := pointSite(0, 4)
	pts := Equidistant(s1, s2, s3, 1e-9)
	require.Len(t, pts, 1)
	assert.InDelta(t, 2, pts[0].X(), 1e-6)
	assert.InDelta(t, 2, pts[0].Y(), 1e-6)
}

func TestEquidistant_twoPointsOneSegment_isEquidistantFromAll(t *testing.T) {
	s1 := pointSite(-5, 0)
	s2 := pointSite(5, 0)
	seg := segSite(0, 20, 0, -20)
	pts := Equidistant(s1, s2, seg, 1e-9)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		d1 := squaredDistanceToSite(p, s1)
		d2 := squaredDistanceToSite(p, s2)
		d3 := squaredDistanceToSite(p, seg)
		assert.InDelta(t, d1, d2, 1e-6)
		assert.InDelta(t, d1, d3, 1e-6)
	}
}

func TestEquidistant_threeSegments_candidatesEquidistant(t *testing.T) {
	s1 := segSite(0, 20, 0, -20)
	s2 := segSite(10, 20, 10, -20)
	s3 := segSite(5, 30, 6, -30)
	pts := Equidistant(s1, s2, s3, 1e-9)
	for _, p := range pts {
		d1 := squaredDistanceToSite(p, s1)
		d2 := squaredDistanceToSite(p, s2)
		d3 := squaredDistanceToSite(p, s3)
		assert.InDelta(t, d1, d2, 1e-4)
		assert.InDelta(t, d1, d3, 1e-4)
	}
}
