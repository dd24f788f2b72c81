package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/npillmayer/cnc25d"
)

// DefaultStyle is the SVG style of outlines if none is given.
const DefaultStyle = "fill:none;stroke:black;stroke-width:0.2"

// SVGSink writes outlines as SVG elements: a <line> per straight segment and a
// <polyline> per arc. Coordinates are millimetres with y pointing up.
type SVGSink struct {
	canvas *svg.SVG
	style  string
}

var _ Sink = (*SVGSink)(nil)

// NewSVGSink starts an SVG document on w showing the rectangle from lo to hi.
// An empty style selects DefaultStyle.
func NewSVGSink(w io.Writer, lo, hi cnc25d.Pair, style string) *SVGSink {
	if style == "" {
		style = DefaultStyle
	}
	width, height := hi.X()-lo.X(), hi.Y()-lo.Y()
	canvas := svg.New(w)
	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="%g %g %g %g"`, lo.X(), -hi.Y(), width, height))
	canvas.Gtransform("scale(1,-1)")
	return &SVGSink{canvas: canvas, style: style}
}

// Backend is SVGBackend.
func (ss *SVGSink) Backend() Backend { return SVGBackend }

func (ss *SVGSink) sealed() {}

// AddLine writes a <line>.
func (ss *SVGSink) AddLine(from, to cnc25d.Pair) {
	ss.canvas.Line(from.X(), from.Y(), to.X(), to.Y(), ss.style)
}

// AddPolyline writes a <polyline>.
func (ss *SVGSink) AddPolyline(pts []cnc25d.Pair) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X(), p.Y()
	}
	ss.canvas.Polyline(xs, ys, ss.style)
}

// Group opens a group of elements with the given id. Callers use it to
// collect the elements of one figure.
func (ss *SVGSink) Group(id string) {
	ss.canvas.Gid(id)
}

// EndGroup closes a group opened with Group.
func (ss *SVGSink) EndGroup() {
	ss.canvas.Gend()
}

// Commit finishes the SVG document.
func (ss *SVGSink) Commit() error {
	ss.canvas.Gend()
	ss.canvas.End()
	return nil
}
