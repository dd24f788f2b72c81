/*
Package place positions extruded 2D figures ("prisms") inside a 3D assembly.

A placement is a rigid motion composed, left to right, of:

  - a shift moving the prism's zero point to the local origin,
  - a flip, a rotation by 180° about an axis through the center of the
    prism's declared bounding box (i: none, x, y or z),
  - an orientation, a rotation mapping the local axes onto the assembly's axes,
    followed by a translation which keeps the bounding box in the positive
    octant,
  - a final translation.

Motions are composed as values, never by transforming points and reading them
back, so a placement does not depend on the contents of a prism.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package place

import (
	"fmt"
	"math"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'cnc25d.place'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.place")
}

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// Motion is a rigid motion: rotate by Rot, then translate by Shift.
type Motion struct {
	Rot   r3.Rotation
	Shift r3.Vec
}

// Identity is the motion leaving every point in place.
func Identity() Motion {
	return Motion{Rot: r3.Rotation(quat.Number{Real: 1})}
}

// Translation is a pure translation.
func Translation(v r3.Vec) Motion {
	m := Identity()
	m.Shift = v
	return m
}

// Rotation is a rotation by alpha about the axis through the origin.
func Rotation(alpha float64, axis r3.Vec) Motion {
	return Motion{Rot: r3.NewRotation(alpha, axis)}
}

// RotationAbout is a rotation by alpha about the axis through center.
func RotationAbout(alpha float64, axis, center r3.Vec) Motion {
	return Translation(r3.Scale(-1, center)).Then(Rotation(alpha, axis)).Then(Translation(center))
}

// Then composes two motions: first m, then n.
func (m Motion) Then(n Motion) Motion {
	return Motion{
		Rot:   r3.Rotation(quat.Mul(quat.Number(n.Rot), quat.Number(m.Rot))),
		Shift: r3.Add(n.Rot.Rotate(m.Shift), n.Shift),
	}
}

// Apply moves a point.
func (m Motion) Apply(p r3.Vec) r3.Vec {
	return r3.Add(m.Rot.Rotate(p), m.Shift)
}

func (m Motion) String() string {
	q := quat.Number(m.Rot)
	return fmt.Sprintf("motion[rot=(%.4g;%.4g,%.4g,%.4g) shift=(%.4g,%.4g,%.4g)]",
		q.Real, q.Imag, q.Jmag, q.Kmag, m.Shift.X, m.Shift.Y, m.Shift.Z)
}

// Flip is a 180° rotation about an axis through a bounding box center.
type Flip string

// The flips.
const (
	FlipI Flip = "i" // identity
	FlipX Flip = "x"
	FlipY Flip = "y"
	FlipZ Flip = "z"
)

// ParseFlip checks a flip tag. It fails with cnc25d.ErrBadFlip.
func ParseFlip(s string, label string) (Flip, error) {
	switch f := Flip(s); f {
	case FlipI, FlipX, FlipY, FlipZ:
		return f, nil
	}
	return "", cnc25d.Fail(label, cnc25d.ErrBadFlip, "flip %q not in {i,x,y,z}", s)
}

// Motion returns the flip about the center of a box of given size.
func (f Flip) Motion(size r3.Vec, label string) (Motion, error) {
	center := r3.Scale(0.5, size)
	switch f {
	case FlipI:
		return Identity(), nil
	case FlipX:
		return RotationAbout(math.Pi, xAxis, center), nil
	case FlipY:
		return RotationAbout(math.Pi, yAxis, center), nil
	case FlipZ:
		return RotationAbout(math.Pi, zAxis, center), nil
	}
	return Motion{}, cnc25d.Fail(label, cnc25d.ErrBadFlip, "flip %q not in {i,x,y,z}", string(f))
}

// Orientation maps the local axes of a prism onto the assembly axes.
// The tag names the assembly axes the local x and y axes end up on.
type Orientation string

// The orientations.
const (
	OrientXY Orientation = "xy"
	OrientXZ Orientation = "xz"
	OrientYX Orientation = "yx"
	OrientYZ Orientation = "yz"
	OrientZX Orientation = "zx"
	OrientZY Orientation = "zy"
)

// ParseOrientation checks an orientation tag. It fails with
// cnc25d.ErrBadOrientation.
func ParseOrientation(s string, label string) (Orientation, error) {
	switch o := Orientation(s); o {
	case OrientXY, OrientXZ, OrientYX, OrientYZ, OrientZX, OrientZY:
		return o, nil
	}
	return "", cnc25d.Fail(label, cnc25d.ErrBadOrientation,
		"orientation %q not in {xy,xz,yx,yz,zx,zy}", s)
}

// Motion returns the orientation rotation for a box of given size, followed
// by the translation bringing the box back into the positive octant.
func (o Orientation) Motion(size r3.Vec, label string) (Motion, error) {
	const quarter = math.Pi / 2
	switch o {
	case OrientXY:
		return Identity(), nil
	case OrientXZ:
		return Rotation(quarter, xAxis).Then(Translation(r3.Vec{Y: size.Z})), nil
	case OrientYX:
		return Rotation(quarter, zAxis).Then(Translation(r3.Vec{X: size.Y})), nil
	case OrientYZ:
		return Rotation(quarter, zAxis).Then(Rotation(quarter, yAxis)), nil
	case OrientZX:
		return Rotation(-quarter, yAxis).Then(Rotation(-quarter, zAxis)), nil
	case OrientZY:
		return Rotation(-quarter, yAxis).Then(Translation(r3.Vec{X: size.Z})), nil
	}
	return Motion{}, cnc25d.Fail(label, cnc25d.ErrBadOrientation,
		"orientation %q not in {xy,xz,yx,yz,zx,zy}", string(o))
}
