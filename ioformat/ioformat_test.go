package ioformat

import (
	"strings"
	"testing"

	"github.com/dmarsden-gvd/gvdfortune/beachline"
	"github.com/dmarsden-gvd/gvdfortune/event"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEdges_straightAndCurved(t *testing.T) {
	straight := []beachline.CommittedEdge{
		{Label: 1, Start: point.New(0, 0), End: point.New(1, 1)},
	}
	curved := [][]point.Point{
		{point.New(0, 0), point.New(0.5, 0.25), point.New(1, 1)},
	}
	var buf strings.Builder
	require.NoError(t, WriteEdges(&buf, straight, curved))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "e\n0 0\n1 1\nec\n"))
	assert.True(t, strings.HasSuffix(out, "e"))
	assert.False(t, strings.HasSuffix(out, "e\n"))
}

func TestWriteEdges_empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteEdges(&buf, nil, nil))
	assert.Equal(t, "e", buf.String())
}

func TestWriteBeachline_straightAndCurved(t *testing.T) {
	arcs := []beachline.SampledArc{
		{Label: 1, IsStraight: true, Points: []point.Point{point.New(-1, 0), point.New(0, -1), point.New(1, 0)}},
		{Label: 2, IsStraight: false, Points: []point.Point{point.New(-1, 1), point.New(0, 0), point.New(1, 1)}},
	}
	var buf strings.Builder
	require.NoError(t, WriteBeachline(&buf, arcs))

	out := buf.String()
	assert.Contains(t, out, "b\n-1 0\n0 -1\n1 0\n")
	assert.Contains(t, out, "bc\n-1 1\n0 0\n1 1\n")
	assert.True(t, strings.HasSuffix(out, "b"))
}

func TestWritePolygons_closesLoop(t *testing.T) {
	polygons := [][]point.Point{
		{point.New(0, 0), point.New(10, 0), point.New(0, 10)},
	}
	var buf strings.Builder
	require.NoError(t, WritePolygons(&buf, polygons))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "p\n0 0\n10 0\n0 10\n0 0\n"))
	assert.True(t, strings.HasSuffix(out, "p"))
}

func TestWriteCloseEvents_plainLines(t *testing.T) {
	events := []event.CloseEvent{
		{ArcID: 1, Point: point.New(1, 2), Y: -3},
	}
	var buf strings.Builder
	require.NoError(t, WriteCloseEvents(&buf, events))
	assert.Equal(t, "1 2 -3\n", buf.String())
}

func TestWriteSweepline_singleLineNoTrailingNewline(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteSweepline(&buf, -12.5))
	assert.Equal(t, "-12.5", buf.String())
}
