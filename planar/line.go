package planar

import (
	"fmt"
	"math"

	"github.com/npillmayer/cnc25d"
)

// Line is a normalized parameterization of the line through two points P and Q.
// Dir is the unit direction from P to Q, Length is |PQ|. K is chosen such that
//
//	SignedDistance(X) = Dir.x·X.y − Dir.y·X.x + K
//
// vanishes on the line and is positive for points on the left of P→Q.
type Line struct {
	P, Q   cnc25d.Pair
	Dir    cnc25d.Pair
	K      float64
	Length float64
}

func (l Line) String() string {
	return fmt.Sprintf("line[%v→%v k=%.4g]", l.P, l.Q, l.K)
}

// Normal is the unit normal pointing to the left side of the line.
func (l Line) Normal() cnc25d.Pair {
	return cnc25d.P(-l.Dir.Y(), l.Dir.X())
}

// SignedDistance is the distance of x from the line, positive on the left.
func (l Line) SignedDistance(x cnc25d.Pair) float64 {
	return l.Dir.X()*x.Y() - l.Dir.Y()*x.X() + l.K
}

// Side is +1 for points left of the line, -1 for points right of it and 0
// for points on the line (within tolerance).
func (l Line) Side(x cnc25d.Pair) int {
	d := l.SignedDistance(x)
	switch {
	case d >= cnc25d.Epsilon:
		return 1
	case d <= -cnc25d.Epsilon:
		return -1
	}
	return 0
}

// Foot is the orthogonal projection of x onto the line.
func (l Line) Foot(x cnc25d.Pair) cnc25d.Pair {
	return x - l.Normal().Scaled(l.SignedDistance(x))
}

// LineEquation returns the line through p and q. It fails with
// cnc25d.ErrDegenerateLine if p and q coincide.
func LineEquation(p, q cnc25d.Pair, label string) (Line, error) {
	length := p.Dist(q)
	if length < cnc25d.Epsilon {
		return Line{}, cnc25d.Fail(label, cnc25d.ErrDegenerateLine,
			"line endpoints coincide: %v %v", p, q)
	}
	dir := (q - p).Scaled(1 / length)
	l := Line{
		P:      p,
		Q:      q,
		Dir:    dir,
		K:      dir.Y()*p.X() - dir.X()*p.Y(),
		Length: length,
	}
	return l, nil
}

// LineDistancePoint returns the point F at distance d from the line PQ,
// reached by going perpendicular from P (to the left for positive d), together
// with the constant of the line through F parallel to PQ.
// SignedDistance relative to the shifted line is SignedDistance(X) − d.
func LineDistancePoint(p, q cnc25d.Pair, d float64, label string) (cnc25d.Pair, float64, error) {
	l, err := LineEquation(p, q, label)
	if err != nil {
		return cnc25d.Origin, 0, err
	}
	f := p + l.Normal().Scaled(d)
	return f, l.K - d, nil
}

// Shifted returns the line parallel to l at distance d (to the left for positive d).
func (l Line) Shifted(d float64) Line {
	n := l.Normal().Scaled(d)
	l.P += n
	l.Q += n
	l.K -= d
	return l
}

// LineCircleIntersection intersects line l with the circle of given center and
// radius. Of the two intersections, the one lying towards hint (measured along
// the line direction from the foot of the center) is returned. If hint does not
// discriminate, dirHint decides: positive for the intersection ahead in line
// direction, negative for the one behind.
//
// The status is cnc25d.Tangent if the line touches the circle (the touching
// point is returned) and cnc25d.Miss if there is no intersection (the
// returned point is undefined).
func LineCircleIntersection(l Line, center cnc25d.Pair, radius float64,
	hint cnc25d.Pair, dirHint int, label string) (cnc25d.Pair, cnc25d.Status) {
	//
	h := l.Foot(center)
	d := math.Abs(l.SignedDistance(center))
	if math.Abs(d-radius) < cnc25d.Epsilon {
		return h, cnc25d.Tangent
	}
	if d > radius {
		return cnc25d.Origin, cnc25d.Miss
	}
	t := math.Sqrt(radius*radius - d*d)
	along := dot(hint-h, l.Dir)
	if math.Abs(along) < cnc25d.Epsilon {
		if dirHint == 0 {
			cnc25d.Warn(label, "line-circle intersection: hint %v does not discriminate, taking forward solution", hint)
		}
		along = float64(dirHint)
	}
	if along < 0 {
		t = -t
	}
	return h + l.Dir.Scaled(t), cnc25d.OK
}

// LineLineIntersection intersects the line through p1, q1 with the line through
// p2, q2. Parallel lines report cnc25d.Miss. It fails with
// cnc25d.ErrDegenerateLine if one of the lines collapses to a point.
func LineLineIntersection(p1, q1, p2, q2 cnc25d.Pair, label string) (cnc25d.Pair, cnc25d.Status, error) {
	l1, err := LineEquation(p1, q1, label)
	if err != nil {
		return cnc25d.Origin, cnc25d.Miss, err
	}
	l2, err := LineEquation(p2, q2, label)
	if err != nil {
		return cnc25d.Origin, cnc25d.Miss, err
	}
	// -dy·x + dx·y = -k for both lines
	det := cross(l1.Dir, l2.Dir)
	if math.Abs(det) < cnc25d.Epsilon {
		return cnc25d.Origin, cnc25d.Miss, nil
	}
	x := (l1.Dir.X()*l2.K - l2.Dir.X()*l1.K) / det
	y := (l1.Dir.Y()*l2.K - l2.Dir.Y()*l1.K) / det
	return cnc25d.P(x, y), cnc25d.OK, nil
}

func dot(a, b cnc25d.Pair) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}

func cross(a, b cnc25d.Pair) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
