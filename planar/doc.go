/*
Package planar implements the closed-form Euclidean routines of the kernel:
circles through three points, signed arc sweeps, line equations, line/line and
line/circle intersections, triangulation by side lengths and the polygonal
approximation of arcs.

All routines are pure functions. Terminal failures are returned as
*cnc25d.Failure values carrying the caller's label; intersection queries
which may legitimately miss return a cnc25d.Status instead.

The direction of an arc given by three points (start, middle, end) is
decided by one rule only: the arc runs counter-clockwise iff, measured
counter-clockwise from the start angle, the end angle comes after the middle
angle. Every other package relies on ArcCenterRadiusAngles for this.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package planar

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cnc25d.planar'
func tracer() tracing.Trace {
	return tracing.Select("cnc25d.planar")
}

const pi2 = 2 * math.Pi

// Reduce an angle to fit into [0, 2π).
func mod2pi(a float64) float64 {
	a = math.Mod(a, pi2)
	if a < 0 {
		a += pi2
	}
	return a
}

// Reduce an angle to fit into [-π, π).
func reduceAngle(a float64) float64 {
	return mod2pi(a+math.Pi) - math.Pi
}
