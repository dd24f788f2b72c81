package render

import (
	"io"

	"github.com/npillmayer/cnc25d"
	"github.com/yofu/dxf"
)

// DXFSink collects outlines as DXF entities: a LINE per straight segment and a
// POLYLINE per arc, all on one layer. The drawing is written on Commit.
type DXFSink struct {
	w       io.Writer
	drawing *dxf.Drawing
	err     error
}

var _ Sink = (*DXFSink)(nil)

// NewDXFSink creates a DXF drawing to be written to w. Entities go to the
// given layer, or to the default layer "0" if layer is empty.
func NewDXFSink(w io.Writer, layer string) *DXFSink {
	ds := &DXFSink{w: w, drawing: dxf.NewDrawing()}
	if layer != "" && layer != "0" {
		_, ds.err = ds.drawing.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true)
	}
	return ds
}

// Backend is DXFBackend.
func (ds *DXFSink) Backend() Backend { return DXFBackend }

func (ds *DXFSink) sealed() {}

// AddLine adds a LINE entity.
func (ds *DXFSink) AddLine(from, to cnc25d.Pair) {
	if ds.err != nil {
		return
	}
	_, ds.err = ds.drawing.Line(from.X(), from.Y(), 0, to.X(), to.Y(), 0)
}

// AddPolyline adds an open POLYLINE entity with a vertex per point.
func (ds *DXFSink) AddPolyline(pts []cnc25d.Pair) {
	if ds.err != nil {
		return
	}
	vertices := make([][]float64, len(pts))
	for i, p := range pts {
		vertices[i] = []float64{p.X(), p.Y(), 0}
	}
	_, ds.err = ds.drawing.Polyline(false, vertices...)
}

// Commit writes the drawing. The first error of adding entities is reported
// here.
func (ds *DXFSink) Commit() error {
	if ds.err != nil {
		return ds.err
	}
	_, err := io.WriteString(ds.w, ds.drawing.String())
	return err
}
