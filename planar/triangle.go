package planar

import (
	"math"

	"github.com/npillmayer/cnc25d"
)

// Triangulation finds the point C with |AC| = lenAC and |BC| = lenBC which lies
// on the same side of line AB as d. If d is on line AB, it is pushed by 5ε
// perpendicular to AB, to the left for positive dirHint and to the right for
// negative dirHint (a warning is emitted if dirHint is 0; left is taken then).
//
// C is computed twice, once from A and once from B. It fails with
// cnc25d.ErrTriangleInfeasible if the side lengths cannot close a triangle and
// with cnc25d.ErrInternalInconsistency if both results disagree.
func Triangulation(a cnc25d.Pair, lenAC float64, b cnc25d.Pair, lenBC float64,
	d cnc25d.Pair, dirHint int, label string) (cnc25d.Pair, error) {
	//
	lenAB := a.Dist(b)
	if lenAB < cnc25d.Epsilon {
		return cnc25d.Origin, cnc25d.Fail(label, cnc25d.ErrDegenerateLine,
			"triangulation base collapses: %v %v", a, b)
	}
	if lenAC < cnc25d.Epsilon || lenBC < cnc25d.Epsilon {
		return cnc25d.Origin, cnc25d.Fail(label, cnc25d.ErrTriangleInfeasible,
			"side lengths must be positive: %g %g", lenAC, lenBC)
	}
	cosA := (lenAC*lenAC + lenAB*lenAB - lenBC*lenBC) / (2 * lenAC * lenAB)
	cosB := (lenBC*lenBC + lenAB*lenAB - lenAC*lenAC) / (2 * lenBC * lenAB)
	if math.Abs(cosA) > 1 || math.Abs(cosB) > 1 {
		return cnc25d.Origin, cnc25d.Fail(label, cnc25d.ErrTriangleInfeasible,
			"sides %g, %g, %g do not close", lenAB, lenAC, lenBC)
	}
	angA, angB := math.Acos(cosA), math.Acos(cosB)
	phiAB := (b - a).Angle()
	side := reduceAngle((d - a).Angle() - phiAB)
	if math.Abs(side) < cnc25d.Epsilon || math.Abs(math.Abs(side)-math.Pi) < cnc25d.Epsilon {
		if dirHint == 0 {
			cnc25d.Warn(label, "triangulation: %v is on line %v–%v, no side hint given", d, a, b)
		}
		normal := cnc25d.P(-math.Sin(phiAB), math.Cos(phiAB))
		push := 5 * cnc25d.Epsilon
		if dirHint < 0 {
			push = -push
		}
		d += normal.Scaled(push)
		side = reduceAngle((d - a).Angle() - phiAB)
	}
	c1 := a + polar(lenAC, phiAB+math.Copysign(angA, side))
	phiBA := phiAB + math.Pi
	sideB := reduceAngle((d - b).Angle() - phiBA)
	c2 := b + polar(lenBC, phiBA+math.Copysign(angB, sideB))
	if c1.Dist(c2) > cnc25d.Epsilon {
		return cnc25d.Origin, cnc25d.Fail(label, cnc25d.ErrInternalInconsistency,
			"triangulation from A gives %v, from B gives %v", c1, c2)
	}
	tracer().Debugf("triangulation A=%v B=%v: C=%v", a, b, c1)
	return c1, nil
}

func polar(r, theta float64) cnc25d.Pair {
	sin, cos := math.Sincos(theta)
	return cnc25d.P(r*cos, r*sin)
}
