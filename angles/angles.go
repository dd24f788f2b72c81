/*
Package angles converts between the two angle pairs describing the same
orientation of a three-axis gimbal: roll/pitch (a1 about x, then a2 about y)
and pan/tilt (b1 in the xy-plane, b2 as elevation above it).

All conversions are pure functions of two reals. They fail only on numeric
self-check violations.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package angles

import (
	"math"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cnc25d.angles'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.angles")
}

const eps = cnc25d.Epsilon

// RollPitchToPanTilt converts a roll/pitch pair (a1, a2) to the pan/tilt pair
// (b1, b2). The tilt complement b is the angle between the z-axis and the
// rotated z-axis, cos b = cos a1 · cos a2.
func RollPitchToPanTilt(a1, a2 float64, label string) (float64, float64, error) {
	b := math.Acos(math.Cos(a2) * math.Cos(a1))
	sinb := math.Sin(b)
	b1 := 0.0
	if math.Abs(sinb) >= eps {
		sinA, err := clampUnit(math.Sin(a2)/sinb, label)
		if err != nil {
			return 0, 0, err
		}
		A := math.Asin(sinA)
		b1 = math.Copysign(math.Pi/2, math.Sin(a1)) - A
	}
	b2 := math.Pi/2 - b
	tracer().Debugf("roll-pitch (%.4g,%.4g) -> pan-tilt (%.4g,%.4g)", a1, a2, b1, b2)
	return b1, b2, nil
}

// PanTiltToRollPitch is the inverse of RollPitchToPanTilt. When the pitch
// reaches ±π/2, the roll is under-determined: a warning is emitted and the
// roll is reported as 0.
func PanTiltToRollPitch(b1, b2 float64, label string) (float64, float64, error) {
	side := math.Copysign(1, math.Sin(b1))
	sina2, err := clampUnit(side*math.Cos(b1)*math.Cos(b2), label)
	if err != nil {
		return 0, 0, err
	}
	a2 := math.Asin(sina2)
	cosa := math.Cos(a2)
	a1 := 0.0
	if math.Abs(cosa) < eps {
		cnc25d.Warn(label, "pan-tilt (%.4g,%.4g): pitch is ±π/2, roll set to 0", b1, b2)
	} else {
		cosa1, err := clampUnit(math.Sin(b2)/cosa, label)
		if err != nil {
			return 0, 0, err
		}
		a1 = side * math.Acos(cosa1)
	}
	tracer().Debugf("pan-tilt (%.4g,%.4g) -> roll-pitch (%.4g,%.4g)", b1, b2, a1, a2)
	return a1, a2, nil
}

// Drift is the angle between the y-axes of both kinematic chains, observed
// along the shared third axis: b3 = acos(cos a1 · cos b1).
func Drift(a1, a2 float64, label string) (float64, error) {
	b1, _, err := RollPitchToPanTilt(a1, a2, label)
	if err != nil {
		return 0, err
	}
	return math.Acos(math.Cos(a1) * math.Cos(b1)), nil
}

// clampUnit snaps x onto [-1, 1] if it is within ε of it.
func clampUnit(x float64, label string) (float64, error) {
	if math.Abs(x) <= 1 {
		return x, nil
	}
	if math.Abs(x) > 1+eps {
		return 0, cnc25d.Fail(label, cnc25d.ErrInternalInconsistency,
			"sine/cosine %g out of range", x)
	}
	return math.Copysign(1, x), nil
}
