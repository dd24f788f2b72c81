// Package outline implements A-outlines, the canonical polyline-with-arcs
// format of the kernel.
/*
An A-outline is an anchor point followed by segments. Every segment starts at
the end of its predecessor and is either a straight line to an end point, or a
circular arc through a middle point to an end point. Each vertex carries a
router-bit radius, a signed annotation for cutter compensation (negative for
inner corners, positive for outer ones) which does not change the curve.

An outline is closed iff its last end point equals its anchor exactly.
Closure is never implied.

Clients either parse the wire format (a list of float lists), or build an
outline with a builder pattern (package qualifiers omitted):

	Start(P(0,0)).LineTo(P(20,0), 0).ArcTo(P(25,5), P(20,10), 0).LineTo(P(0,10), 0).LineTo(P(0,0), 0)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package outline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/planar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cnc25d.outline'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.outline")
}

// Kind discriminates segments.
type Kind int

// Segment kinds.
const (
	LineKind Kind = iota // straight line to End
	ArcKind              // circular arc through Mid to End
)

func (k Kind) String() string {
	if k == ArcKind {
		return "arc"
	}
	return "line"
}

// Segment is a line or an arc, starting at the end point of its predecessor.
// Mid is only meaningful for arcs.
type Segment struct {
	Kind      Kind
	Mid       cnc25d.Pair
	End       cnc25d.Pair
	BitRadius float64
}

// Line creates a line segment.
func Line(end cnc25d.Pair, bitRadius float64) Segment {
	return Segment{Kind: LineKind, End: end, BitRadius: bitRadius}
}

// Arc creates an arc segment.
func Arc(mid, end cnc25d.Pair, bitRadius float64) Segment {
	return Segment{Kind: ArcKind, Mid: mid, End: end, BitRadius: bitRadius}
}

// IsArc is a predicate: is this segment an arc?
func (seg Segment) IsArc() bool {
	return seg.Kind == ArcKind
}

// Outline is an A-outline: an anchor followed by segments.
// Outlines are values; they are never modified once built.
type Outline struct {
	Anchor       cnc25d.Pair
	AnchorRadius float64 // accepted for symmetry, ignored at the start
	Segments     []Segment
}

// Start creates an outline from an anchor, to be extended by subsequent
// builder calls.
func Start(anchor cnc25d.Pair) *Outline {
	return &Outline{Anchor: anchor}
}

// LineTo appends a straight line. Part of builder functionality.
func (o *Outline) LineTo(end cnc25d.Pair, bitRadius float64) *Outline {
	o.Segments = append(o.Segments, Line(end, bitRadius))
	return o
}

// ArcTo appends an arc through mid to end. Part of builder functionality.
func (o *Outline) ArcTo(mid, end cnc25d.Pair, bitRadius float64) *Outline {
	o.Segments = append(o.Segments, Arc(mid, end, bitRadius))
	return o
}

// Close appends a straight line back to the anchor, if the outline is not
// already closed. Part of builder functionality.
func (o *Outline) Close(bitRadius float64) *Outline {
	if !o.Closed() {
		o.LineTo(o.Anchor, bitRadius)
	}
	return o
}

// N returns the number of segments.
func (o *Outline) N() int {
	return len(o.Segments)
}

// Z returns the start point of segment i, which is the anchor for i = 0.
func (o *Outline) Z(i int) cnc25d.Pair {
	if i == 0 {
		return o.Anchor
	}
	return o.Segments[i-1].End
}

// Last returns the final end point of the outline.
func (o *Outline) Last() cnc25d.Pair {
	if len(o.Segments) == 0 {
		return o.Anchor
	}
	return o.Segments[len(o.Segments)-1].End
}

// Closed is a predicate: does the outline end exactly at its anchor?
func (o *Outline) Closed() bool {
	return len(o.Segments) > 0 && o.Last() == o.Anchor
}

// Arc returns the geometry of segment i, which must be an arc.
func (o *Outline) Arc(i int, label string) (planar.Arc, error) {
	seg := o.Segments[i]
	return planar.ArcCenterRadiusAngles(o.Z(i), seg.Mid, seg.End, label)
}

// Reverse returns the outline traversed backwards. Arcs keep their middle
// points, so their sweeps change sign. Bit radii stay with their vertices.
func (o *Outline) Reverse() *Outline {
	n := len(o.Segments)
	if n == 0 {
		return Start(o.Anchor)
	}
	r := &Outline{Anchor: o.Last(), AnchorRadius: o.Segments[n-1].BitRadius}
	for i := n - 1; i >= 0; i-- {
		seg := o.Segments[i]
		radius := o.AnchorRadius
		if i > 0 {
			radius = o.Segments[i-1].BitRadius
		}
		r.Segments = append(r.Segments, Segment{
			Kind:      seg.Kind,
			Mid:       seg.Mid,
			End:       o.Z(i),
			BitRadius: radius,
		})
	}
	return r
}

// Transformed returns a copy of the outline with every point mapped by m.
// m must be a rigid motion, otherwise arcs will not stay circular.
func (o *Outline) Transformed(m cnc25d.AT) *Outline {
	t := &Outline{Anchor: m.Transform(o.Anchor), AnchorRadius: o.AnchorRadius}
	t.Segments = make([]Segment, len(o.Segments))
	for i, seg := range o.Segments {
		seg.End = m.Transform(seg.End)
		if seg.IsArc() {
			seg.Mid = m.Transform(seg.Mid)
		}
		t.Segments[i] = seg
	}
	return t
}

// Vertices returns the outline as a polyline, with arcs sampled at the given
// resolution (see planar.SampleArc). Consecutive points are distinct.
func (o *Outline) Vertices(resolution int, label string) ([]cnc25d.Pair, error) {
	pts := []cnc25d.Pair{o.Anchor}
	for i, seg := range o.Segments {
		if !seg.IsArc() {
			pts = append(pts, seg.End)
			continue
		}
		arcpts, err := planar.SampleArc(o.Z(i), seg.Mid, seg.End, resolution, label)
		if err != nil {
			return nil, err
		}
		pts = append(pts, arcpts[1:]...)
	}
	return pts, nil
}

// AsString returns an outline as a (debugging) string, e.g.
//
//	(0,0) -- (20,0) .. (25,5) .. (20,10) -- cycle
//
// Lines are shown as "--", arcs as ".. mid ..".
func AsString(o *Outline) string {
	var b strings.Builder
	b.WriteString(o.Anchor.String())
	for i, seg := range o.Segments {
		closing := i == len(o.Segments)-1 && o.Closed()
		if seg.IsArc() {
			fmt.Fprintf(&b, " .. %s ..", seg.Mid)
		} else {
			b.WriteString(" --")
		}
		if closing {
			b.WriteString(" cycle")
		} else {
			fmt.Fprintf(&b, " %s", seg.End)
		}
	}
	return b.String()
}
