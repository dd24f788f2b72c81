/*
Package render draws outlines onto output backends ("sinks").

The set of sinks is closed: a curve sink keeping arcs analytic (for solid
modeling), an SVG sink, a DXF sink and a raster canvas sink. Every sink offers
the same small set of capabilities: add a straight segment, add a polyline,
and commit. The curve sink additionally accepts analytic arcs and groups
edges into wires.

Clients never talk to a sink directly while drawing. DrawOutline (and its
variants DrawRaw and DrawFigure) is the only entry point: it walks the
segments of an outline in order and emits them in the form the sink's backend
needs. Callers own the sink: they create it, pass it for the duration of a
call, and finish it with Commit (DrawFigure does that for them).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"fmt"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"github.com/npillmayer/cnc25d/planar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cnc25d.render'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.render")
}

// Backend tags the kind of a sink.
type Backend int

// The backends.
const (
	CurveBackend Backend = iota
	SVGBackend
	DXFBackend
	CanvasBackend
)

func (b Backend) String() string {
	switch b {
	case CurveBackend:
		return "curve"
	case SVGBackend:
		return "svg"
	case DXFBackend:
		return "dxf"
	case CanvasBackend:
		return "canvas"
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// Sink is the capability set every backend provides. Implementations are
// the types of this package only.
type Sink interface {
	Backend() Backend
	AddLine(from, to cnc25d.Pair)
	AddPolyline(pts []cnc25d.Pair)
	Commit() error
	sealed()
}

// DrawOutline emits an outline to a sink. Segments are emitted in order.
// A curve sink receives arcs analytically and the outline's edges are
// grouped into a wire, closed iff the outline is closed. All other sinks
// receive every arc as a polyline sampled at the given resolution.
func DrawOutline(o *outline.Outline, s Sink, resolution int, label string) error {
	tracer().Debugf("draw %s to %v", outline.AsString(o), s.Backend())
	switch s.Backend() {
	case CurveBackend:
		return drawAnalytic(o, s.(*CurveSink), label)
	case SVGBackend, DXFBackend, CanvasBackend:
		return drawTessellated(o, s, resolution, label)
	}
	return fmt.Errorf("unknown backend %v", s.Backend())
}

// DrawRaw validates an outline in wire format and emits it to a sink.
func DrawRaw(raw [][]float64, s Sink, resolution int, label string) error {
	o, err := outline.Parse(raw, label)
	if err != nil {
		return err
	}
	return DrawOutline(o, s, resolution, label)
}

// DrawFigure emits all outlines of a figure and commits the sink.
func DrawFigure(fig outline.Figure, s Sink, resolution int, label string) error {
	for _, o := range fig {
		if err := DrawOutline(o, s, resolution, label); err != nil {
			return err
		}
	}
	return s.Commit()
}

func drawAnalytic(o *outline.Outline, cs *CurveSink, label string) error {
	for i, seg := range o.Segments {
		from := o.Z(i)
		if !seg.IsArc() {
			cs.AddLine(from, seg.End)
			continue
		}
		arc, err := planar.ArcCenterRadiusAngles(from, seg.Mid, seg.End, label)
		if err != nil {
			return err
		}
		cs.AddArc(arc)
	}
	if o.Closed() {
		cs.CloseWire()
	} else {
		cs.endWire()
	}
	return nil
}

func drawTessellated(o *outline.Outline, s Sink, resolution int, label string) error {
	if resolution < planar.MinResolution {
		return cnc25d.Fail(label, cnc25d.ErrBadResolution,
			"resolution %d must be at least %d", resolution, planar.MinResolution)
	}
	for i, seg := range o.Segments {
		from := o.Z(i)
		if !seg.IsArc() {
			s.AddLine(from, seg.End)
			continue
		}
		pts, err := planar.SampleArc(from, seg.Mid, seg.End, resolution, label)
		if err != nil {
			return err
		}
		s.AddPolyline(pts)
	}
	return nil
}
