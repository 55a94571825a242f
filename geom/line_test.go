package geom

import (
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/stretchr/testify/assert"
)

func TestIntersectLines_crossing(t *testing.T) {
	l1 := NewLine(point.New(0, 0), point.New(10, 10))
	l2 := NewLine(point.New(0, 10), point.New(10, 0))
	pt, ok := IntersectLines(l1, l2, 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 5, pt.X(), 1e-9)
	assert.InDelta(t, 5, pt.Y(), 1e-9)
}

func TestIntersectLines_parallel(t *testing.T) {
	l1 := NewLine(point.New(0, 0), point.New(10, 0))
	l2 := NewLine(point.New(0, 1), point.New(10, 1))
	_, ok := IntersectLines(l1, l2, 1e-9)
	assert.False(t, ok)
}

func TestLine_At(t *testing.T) {
	l := NewLine(point.New(1, 1), point.New(3, 5))
	p := l.At(0.5)
	assert.InDelta(t, 2, p.X(), 1e-9)
	assert.InDelta(t, 3, p.Y(), 1e-9)
}
