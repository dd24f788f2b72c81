package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = [][]float64{{0, 0}, {20, 0, 0}, {20, 20, 0}, {0, 20, 0}, {0, 0, 0}}

var roundedRect = [][]float64{
	{110, 0}, {120, 0, 0}, {130, 0, 130, 10, 0}, {130, 20, 0}, {130, 30, 120, 30, 0},
	{110, 30, 0}, {100, 30, 100, 20, 0}, {100, 10, 0}, {100, 0, 110, 0, 0},
}

// roundedRect mirrored at the x-axis, i.e. traversed clockwise
var roundedRectCW = [][]float64{
	{110, 0}, {120, 0, 0}, {130, 0, 130, -10, 0}, {130, -20, 0}, {130, -30, 120, -30, 0},
	{110, -30, 0}, {100, -30, 100, -20, 0}, {100, -10, 0}, {100, 0, 110, 0, 0},
}

func TestCurveSinkSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cs := NewCurveSink()
	require.NoError(t, DrawRaw(square, cs, 10, "ERR500"))
	require.NoError(t, cs.Commit())
	wires := cs.Wires()
	require.Equal(t, 1, len(wires))
	assert.True(t, wires[0].Closed)
	require.Equal(t, 4, len(wires[0].Edges))
	for i, e := range wires[0].Edges {
		assert.Equal(t, outline.LineKind, e.Kind)
		next := wires[0].Edges[(i+1)%4]
		assert.Equal(t, e.End, next.Start, "edges must chain")
	}
}

func TestCurveSinkArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cs := NewCurveSink()
	require.NoError(t, DrawRaw(roundedRect, cs, 10, "ERR501"))
	wires := cs.Wires()
	require.Equal(t, 1, len(wires))
	assert.True(t, wires[0].Closed)
	arcs := 0
	for _, e := range wires[0].Edges {
		if e.Kind == outline.ArcKind {
			arcs++
			assert.InDelta(t, 5*math.Sqrt2, e.Arc.Radius, cnc25d.Epsilon)
			assert.Greater(t, e.Arc.Sweep, 0.0)
		}
	}
	assert.Equal(t, 4, arcs)
}

func TestCurveSinkOpenShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cs := NewCurveSink()
	require.NoError(t, DrawRaw(roundedRect[:len(roundedRect)-1], cs, 10, "ERR502"))
	require.NoError(t, DrawRaw(square, cs, 10, "ERR502"))
	wires := cs.Wires()
	require.Equal(t, 2, len(wires))
	assert.False(t, wires[0].Closed)
	assert.Equal(t, 7, len(wires[0].Edges))
	assert.True(t, wires[1].Closed)
}

func TestCurveSinkClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cs := NewCurveSink()
	require.NoError(t, DrawRaw(roundedRectCW, cs, 10, "ERR503"))
	for _, e := range cs.Wires()[0].Edges {
		if e.Kind == outline.ArcKind {
			assert.Less(t, e.Arc.Sweep, 0.0)
		}
	}
}

func TestSVGSink(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	ss := NewSVGSink(&buf, cnc25d.P(90, -10), cnc25d.P(140, 40), "")
	ss.Group("rounded")
	require.NoError(t, DrawRaw(roundedRect, ss, 10, "ERR510"))
	ss.EndGroup()
	require.NoError(t, ss.Commit())
	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "<line"))
	assert.Equal(t, 4, strings.Count(out, "<polyline"))
	assert.Contains(t, out, `id="rounded"`)
	assert.Contains(t, out, "</svg>")
}

func TestDXFSink(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	ds := NewDXFSink(&buf, "outline")
	fig, err := outline.ParseFigure([][][]float64{roundedRect, square}, "ERR520")
	require.NoError(t, err)
	require.NoError(t, DrawFigure(fig, ds, 10, "ERR520"))
	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, "\nLINE\n"))
	assert.Equal(t, 4, strings.Count(out, "\nPOLYLINE\n"))
	assert.Equal(t, 4, strings.Count(out, "\nSEQEND\n"))
	assert.Contains(t, out, "ENTITIES")
	assert.Contains(t, out, "\noutline\n", "entities carry the layer")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "EOF"))
}

func TestCanvasSink(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cv := NewCanvasSink(cnc25d.P(-5, -5), cnc25d.P(25, 25), 2)
	fig, err := outline.ParseFigure([][][]float64{square}, "ERR530")
	require.NoError(t, err)
	require.NoError(t, DrawFigure(fig, cv, 10, "ERR530"))
	img := cv.Image()
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, uint8(0xff), img.AlphaAt(30, 30).A, "center of the square")
	assert.Equal(t, uint8(0), img.AlphaAt(2, 2).A, "outside the square")
}

func TestTessellatedBadResolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	err := DrawRaw(square, NewDXFSink(&buf, ""), 2, "ERR540")
	assert.ErrorIs(t, err, cnc25d.ErrBadResolution)
	err = DrawRaw([][]float64{{0, 0}}, NewCurveSink(), 10, "ERR541")
	assert.ErrorIs(t, err, cnc25d.ErrShortList)
}
