package planar

import (
	"fmt"
	"math"

	"github.com/npillmayer/cnc25d"
)

// Arc is a circular arc from Start through Mid to End, with its inferred
// circle and angles. All angles are measured from +x. MidAngle and EndAngle
// are unwrapped relative to StartAngle, so that
//
//	EndAngle - StartAngle = Sweep
//
// and MidAngle lies between both. A positive Sweep is counter-clockwise.
type Arc struct {
	Start, Mid, End cnc25d.Pair
	Center          cnc25d.Pair
	Radius          float64
	Sweep           float64
	StartAngle      float64
	MidAngle        float64
	EndAngle        float64
}

// CCW is a predicate: does the arc run counter-clockwise?
func (arc Arc) CCW() bool {
	return arc.Sweep > 0
}

// Point returns the point on the arc's circle at angle theta.
func (arc Arc) Point(theta float64) cnc25d.Pair {
	sin, cos := math.Sincos(theta)
	return arc.Center + cnc25d.P(arc.Radius*cos, arc.Radius*sin)
}

func (arc Arc) String() string {
	return fmt.Sprintf("arc[%v..%v..%v c=%v r=%.4g sweep=%.4g]",
		arc.Start, arc.Mid, arc.End, arc.Center, arc.Radius, arc.Sweep)
}

// ArcCenterRadius computes the unique circle through the three points a, b and c.
// The center is found as the intersection of the perpendicular bisectors of
// AB and BC.
//
// It fails with cnc25d.ErrDegenerateArc if two of the points coincide or if
// the points are colinear, and with cnc25d.ErrInternalInconsistency if the
// distances of the computed center to a, b and c do not agree.
func ArcCenterRadius(a, b, c cnc25d.Pair, label string) (cnc25d.Pair, float64, error) {
	lAB, lBC, lAC := a.Dist(b), b.Dist(c), a.Dist(c)
	if lAB < cnc25d.Epsilon || lBC < cnc25d.Epsilon || lAC < cnc25d.Epsilon {
		return cnc25d.Origin, 0, cnc25d.Fail(label, cnc25d.ErrDegenerateArc,
			"points too close: %v %v %v", a, b, c)
	}
	m := (a + b) / 2 // mid of AB
	n := (b + c) / 2 // mid of BC
	cose, sine := (b.X()-a.X())/lAB, (b.Y()-a.Y())/lAB
	cosf, sinf := (c.X()-b.X())/lBC, (c.Y()-b.Y())/lBC
	// bisector of AB: cos e·x + sin e·y = kAB, same for BC with f
	kAB := cose*m.X() + sine*m.Y()
	kBC := cosf*n.X() + sinf*n.Y()
	dx := cose*sinf - cosf*sine
	dy := sine*cosf - sinf*cose
	if math.Abs(dx) < cnc25d.Epsilon || math.Abs(dy) < cnc25d.Epsilon {
		return cnc25d.Origin, 0, cnc25d.Fail(label, cnc25d.ErrDegenerateArc,
			"points are colinear: %v %v %v", a, b, c)
	}
	center := cnc25d.P((kAB*sinf-kBC*sine)/dx, (kAB*cosf-kBC*cose)/dy)
	r := center.Dist(a)
	rb, rc := center.Dist(b), center.Dist(c)
	if math.Abs(r-rb) > cnc25d.Epsilon || math.Abs(r-rc) > cnc25d.Epsilon {
		return cnc25d.Origin, 0, cnc25d.Fail(label, cnc25d.ErrInternalInconsistency,
			"radii of %v disagree: %g %g %g", center, r, rb, rc)
	}
	tracer().Debugf("arc %v %v %v: center = %v, r = %.4g", a, b, c, center, r)
	return center, r, nil
}

// ArcCenterRadiusAngles extends ArcCenterRadius by the signed sweep and the
// angles of the three points.
//
// The arc is counter-clockwise (positive sweep) iff the angle from start to end,
// taken modulo 2π, exceeds the angle from start to middle, taken modulo 2π.
// Otherwise both angles are decremented by 2π, giving a negative sweep.
func ArcCenterRadiusAngles(a, b, c cnc25d.Pair, label string) (Arc, error) {
	center, r, err := ArcCenterRadius(a, b, c, label)
	if err != nil {
		return Arc{}, err
	}
	ua := (a - center).Angle()
	ub := (b - center).Angle()
	uc := (c - center).Angle()
	ab := mod2pi(ub - ua)
	ac := mod2pi(uc - ua)
	if ac <= ab { // clockwise
		ab -= pi2
		ac -= pi2
	}
	arc := Arc{
		Start:      a,
		Mid:        b,
		End:        c,
		Center:     center,
		Radius:     r,
		Sweep:      ac,
		StartAngle: ua,
		MidAngle:   ua + ab,
		EndAngle:   ua + ac,
	}
	tracer().Debugf("%v", arc)
	return arc, nil
}
