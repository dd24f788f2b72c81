package render

import (
	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"github.com/npillmayer/cnc25d/planar"
)

// Edge is a native curve of the curve sink: a straight line or an analytic arc.
type Edge struct {
	Kind       outline.Kind
	Start, End cnc25d.Pair
	Arc        planar.Arc // valid for arcs only
}

// Wire is a chain of edges, as produced from one outline.
type Wire struct {
	Edges  []Edge
	Closed bool
}

// CurveSink collects native curves for solid modeling backends.
// Arcs are kept analytically.
type CurveSink struct {
	wires   []Wire
	current []Edge
}

var _ Sink = (*CurveSink)(nil)

// NewCurveSink creates an empty curve sink.
func NewCurveSink() *CurveSink {
	return &CurveSink{}
}

// Backend is CurveBackend.
func (cs *CurveSink) Backend() Backend { return CurveBackend }

func (cs *CurveSink) sealed() {}

// AddLine adds a straight edge.
func (cs *CurveSink) AddLine(from, to cnc25d.Pair) {
	cs.current = append(cs.current, Edge{Kind: outline.LineKind, Start: from, End: to})
}

// AddPolyline adds one straight edge per polyline leg.
func (cs *CurveSink) AddPolyline(pts []cnc25d.Pair) {
	for i := 1; i < len(pts); i++ {
		cs.AddLine(pts[i-1], pts[i])
	}
}

// AddArc adds an analytic arc edge.
func (cs *CurveSink) AddArc(arc planar.Arc) {
	cs.current = append(cs.current, Edge{Kind: outline.ArcKind, Start: arc.Start, End: arc.End, Arc: arc})
}

// CloseWire groups the edges added since the last wire into a closed wire.
func (cs *CurveSink) CloseWire() {
	cs.wires = append(cs.wires, Wire{Edges: cs.current, Closed: true})
	cs.current = nil
}

func (cs *CurveSink) endWire() {
	if len(cs.current) > 0 {
		cs.wires = append(cs.wires, Wire{Edges: cs.current})
		cs.current = nil
	}
}

// Commit groups pending edges into an open wire.
func (cs *CurveSink) Commit() error {
	cs.endWire()
	return nil
}

// Wires returns the wires collected so far.
func (cs *CurveSink) Wires() []Wire {
	return cs.wires
}
