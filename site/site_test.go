package site

import (
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmentSite_ordersEndpoints(t *testing.T) {
	s, err := NewSegmentSite(1, point.New(0, 0), point.New(0, 10))
	require.NoError(t, err)
	assert.Equal(t, point.New(0, 10), s.A)
	assert.Equal(t, point.New(0, 0), s.B)
}

func TestNewSegmentSite_preservesAlreadyOrderedEndpoints(t *testing.T) {
	s, err := NewSegmentSite(2, point.New(5, 10), point.New(5, 0))
	require.NoError(t, err)
	assert.Equal(t, point.New(5, 10), s.A)
	assert.Equal(t, point.New(5, 0), s.B)
}

func TestNewSegmentSite_rejectsHorizontal(t *testing.T) {
	_, err := NewSegmentSite(3, point.New(0, 5), point.New(10, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHorizontalSegment)
}

func TestNewPointSite(t *testing.T) {
	p := NewPointSite(7, point.New(1, 2))
	assert.Equal(t, 7, p.Label)
	assert.Equal(t, point.New(1, 2), p.Point)
}
