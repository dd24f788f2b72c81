/*
Package assembly describes how 2D figures are mounted into a 3D scene.

A Record places one instance of a named figure: the figure point mapped to
the local origin, the declared size of the extruded prism, a flip, an
orientation and a translation. A Configuration is an ordered list of records.
Several records may share a figure; figures are never copied or modified.

Sub-designs are composed, not inherited. A parent runs a child's Builder,
receives its figures and a reference configuration, and re-situates the
child's records:

	figs, _ := child.Figures(settings)
	asm, _ := child.Assemblies(settings)
	cfg := asm["plate"].Records.Resituate(func(i int, r Record) Situation {
	    return Situation{Flip: place.FlipI, Orientation: place.OrientXZ, TY: 10 * float64(i)}
	})

Geometry of the child is never re-derived, only moved.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package assembly

import (
	"fmt"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/cnc25d/place"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'cnc25d.assembly'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.assembly")
}

// Record is the placement of one figure instance. Records are values; the
// figure is referenced by name.
type Record struct {
	Figure      string            `yaml:"figure"`
	ZeroX       float64           `yaml:"zero_x"`
	ZeroY       float64           `yaml:"zero_y"`
	SizeX       float64           `yaml:"size_x"`
	SizeY       float64           `yaml:"size_y"`
	SizeZ       float64           `yaml:"size_z"`
	Flip        place.Flip        `yaml:"flip"`
	Orientation place.Orientation `yaml:"orientation"`
	TX          float64           `yaml:"tx"`
	TY          float64           `yaml:"ty"`
	TZ          float64           `yaml:"tz"`
}

// Situation is the part of a record a parent design may override.
type Situation struct {
	Flip        place.Flip
	Orientation place.Orientation
	TX, TY, TZ  float64
}

// Situation extracts the overridable fields of r.
func (r Record) Situation() Situation {
	return Situation{Flip: r.Flip, Orientation: r.Orientation, TX: r.TX, TY: r.TY, TZ: r.TZ}
}

// Resituate returns a copy of r with flip, orientation and translation taken
// from s. Figure, zero point and size are kept.
func (r Record) Resituate(s Situation) Record {
	r.Flip, r.Orientation = s.Flip, s.Orientation
	r.TX, r.TY, r.TZ = s.TX, s.TY, s.TZ
	return r
}

// Prism is the extruded figure as seen by the placement transform.
func (r Record) Prism() place.Prism {
	return place.Prism{
		Zero: cnc25d.P(r.ZeroX, r.ZeroY),
		Size: r3.Vec{X: r.SizeX, Y: r.SizeY, Z: r.SizeZ},
	}
}

// Translation is the final translation of the record.
func (r Record) Translation() r3.Vec {
	return r3.Vec{X: r.TX, Y: r.TY, Z: r.TZ}
}

// Motion computes the rigid motion placing the record's prism.
func (r Record) Motion(label string) (place.Motion, error) {
	return place.Place(r.Prism(), r.Flip, r.Orientation, r.Translation(), label)
}

func (r Record) String() string {
	return fmt.Sprintf("%s[zero=(%g,%g) size=(%g,%g,%g) %s/%s t=(%g,%g,%g)]",
		r.Figure, r.ZeroX, r.ZeroY, r.SizeX, r.SizeY, r.SizeZ,
		r.Flip, r.Orientation, r.TX, r.TY, r.TZ)
}

// Configuration is an ordered sequence of records.
type Configuration []Record

// Resituate copies the configuration, substituting the situation of every
// record by the one fn computes for it. The receiver is not modified.
func (cfg Configuration) Resituate(fn func(i int, r Record) Situation) Configuration {
	c := make(Configuration, len(cfg))
	for i, r := range cfg {
		c[i] = r.Resituate(fn(i, r))
	}
	return c
}

// Shifted copies the configuration, translating every record by t.
func (cfg Configuration) Shifted(t r3.Vec) Configuration {
	return cfg.Resituate(func(_ int, r Record) Situation {
		s := r.Situation()
		s.TX, s.TY, s.TZ = s.TX+t.X, s.TY+t.Y, s.TZ+t.Z
		return s
	})
}

// Concat appends the records of other to a copy of cfg.
func (cfg Configuration) Concat(other Configuration) Configuration {
	c := make(Configuration, 0, len(cfg)+len(other))
	c = append(c, cfg...)
	return append(c, other...)
}

// Placement is a record together with its computed motion and the bounds of
// its placed prism.
type Placement struct {
	Record Record
	Motion place.Motion
	Box    r3.Box
}

// Place computes the placements of all records, in order. It fails on the
// first record with an unknown flip or orientation.
func (cfg Configuration) Place(label string) ([]Placement, error) {
	pls := make([]Placement, 0, len(cfg))
	for _, r := range cfg {
		m, err := r.Motion(label)
		if err != nil {
			return nil, err
		}
		pls = append(pls, Placement{
			Record: r,
			Motion: m,
			Box:    place.PlacedBox(r.Prism(), m),
		})
		tracer().Debugf("placed %v", r)
	}
	return pls, nil
}

// Bounds returns the union of the boxes of placements. It returns the zero
// box for an empty list.
func Bounds(pls []Placement) r3.Box {
	var box r3.Box
	for i, pl := range pls {
		if i == 0 {
			box = pl.Box
			continue
		}
		box = union(box, pl.Box)
	}
	return box
}

func union(a, b r3.Box) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y), Z: min(a.Min.Z, b.Min.Z)},
		Max: r3.Vec{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y), Z: max(a.Max.Z, b.Max.Z)},
	}
}
