/*
Package polygon deals with polygonal approximations of outlines and figures.

Polygons are stored as polyclip contours (github.com/akavel/polyclip-go).
Outlines are flattened with package planar's arc sampler, so a polygon
derived from an outline shares its vertices exactly.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/outline"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("cnc25d.polygon")
}

// Polygon is a closed or open sequence of knots.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot().
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p cnc25d.Pair) *Polygon {
	pg.contour.Add(pt(p))
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(p, q cnc25d.Pair) *Polygon {
	lx, hx := minmax(p.X(), q.X())
	ly, hy := minmax(p.Y(), q.Y())
	return NullPolygon().Knot(cnc25d.P(lx, ly)).Knot(cnc25d.P(hx, ly)).
		Knot(cnc25d.P(hx, hy)).Knot(cnc25d.P(lx, hy)).Cycle()
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i.
func (pg *Polygon) Z(i int) cnc25d.Pair {
	return pair(pg.contour[i%len(pg.contour)])
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Contour returns the polyclip contour of the polygon.
func (pg *Polygon) Contour() polyclip.Contour {
	return pg.contour.Clone()
}

// Contains is a predicate: is p inside the closed polygon?
func (pg *Polygon) Contains(p cnc25d.Pair) bool {
	return pg.cycle && pg.contour.Contains(pt(p))
}

// BoundingBox returns lower-left and upper-right corners of the polygon.
func (pg *Polygon) BoundingBox() (cnc25d.Pair, cnc25d.Pair) {
	bb := pg.contour.BoundingBox()
	return pair(bb.Min), pair(bb.Max)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%g,%g)", p.X, p.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// FromOutline flattens an outline into a polygon. A closed outline gives a
// cyclic polygon without a repeated terminal knot.
func FromOutline(o *outline.Outline, resolution int, label string) (*Polygon, error) {
	pts, err := o.Vertices(resolution, label)
	if err != nil {
		return nil, err
	}
	pg := NullPolygon()
	if o.Closed() {
		pts = pts[:len(pts)-1]
		pg.Cycle()
	}
	for _, p := range pts {
		pg.Knot(p)
	}
	L().Debugf("outline flattened to %d knots", pg.N())
	return pg, nil
}

// FromFigure flattens all outlines of a figure into one polyclip polygon.
func FromFigure(fig outline.Figure, resolution int, label string) (polyclip.Polygon, error) {
	poly := make(polyclip.Polygon, 0, len(fig))
	for _, o := range fig {
		pg, err := FromOutline(o, resolution, label)
		if err != nil {
			return nil, err
		}
		poly.Add(pg.contour)
	}
	return poly, nil
}

// BoundingBox returns lower-left and upper-right corners of the flattened
// figure. Arcs are sampled at the given resolution.
func BoundingBox(fig outline.Figure, resolution int, label string) (cnc25d.Pair, cnc25d.Pair, error) {
	poly, err := FromFigure(fig, resolution, label)
	if err != nil {
		return cnc25d.Origin, cnc25d.Origin, err
	}
	if len(poly) == 0 {
		return cnc25d.Origin, cnc25d.Origin, nil
	}
	bb := poly.BoundingBox()
	return pair(bb.Min), pair(bb.Max), nil
}

// Inside is a predicate: is p inside the figure's outer outline and outside
// all of its holes?
func Inside(fig outline.Figure, p cnc25d.Pair, resolution int, label string) (bool, error) {
	for i, o := range fig {
		pg, err := FromOutline(o, resolution, label)
		if err != nil {
			return false, err
		}
		if in := pg.Contains(p); (i == 0) != in {
			return false, nil
		}
	}
	return len(fig) > 0, nil
}

func pt(p cnc25d.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) cnc25d.Pair {
	return cnc25d.P(p.X, p.Y)
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
