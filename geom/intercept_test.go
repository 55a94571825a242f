package geom

import (
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIntercept_twoPoints_breakpointEquidistant(t *testing.T) {
	left := pointSite(-5, 10)
	right := pointSite(5, 10)
	pt, err := GetIntercept(left, right, 0, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 0, pt.X(), 1e-6)
}

func TestGetIntercept_pointAndSegment_noError(t *testing.T) {
	left := pointSite(-5, 10)
	right := segSite(10, 20, 10, -20)
	_, err := GetIntercept(left, right, 0, 1e-9)
	assert.NoError(t, err)
}

func TestCoincidentFocusFallback_triggersOnLowerEndpointMatch(t *testing.T) {
	seg := segSite(10, 20, 10, -20)
	v := CreateV(seg.A, seg.B, -30)
	xs := coincidentFocusFallback(nil, v, seg.B, seg, 1e-9)
	assert.NotEmpty(t, xs)
}

func TestCoincidentFocusFallback_leavesNonEmptyResultUntouched(t *testing.T) {
	xs := coincidentFocusFallback([]float64{1, 2}, VArc{}, point.Point{}, Site{}, 1e-9)
	assert.Equal(t, []float64{1, 2}, xs)
}

func TestCoincidentFocusFallback_noEndpointMatchStaysEmpty(t *testing.T) {
	seg := segSite(10, 20, 10, -20)
	v := CreateV(seg.A, seg.B, -30)
	farFocus := point.New(100, 100)
	xs := coincidentFocusFallback(nil, v, farFocus, seg, 1e-9)
	assert.Empty(t, xs)
}
