package planar

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = cnc25d.Epsilon

var P = cnc25d.P

func TestArcCenterRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	triples := [][3]cnc25d.Pair{
		{P(10, 0), P(0, 10), P(-10, 0)},
		{P(120, 0), P(130, 0), P(130, 10)},
		{P(1, 2), P(4, -3), P(-5, -1)},
		{P(0, 0), P(50, 3), P(100, 0)},
	}
	for _, tr := range triples {
		c, r, err := ArcCenterRadius(tr[0], tr[1], tr[2], "ERR100")
		require.NoError(t, err)
		for _, p := range tr {
			assert.InDelta(t, r, c.Dist(p), eps, "distance of %v from %v", p, c)
		}
	}
	c, r, err := ArcCenterRadius(P(10, 0), P(0, 10), P(-10, 0), "ERR100")
	require.NoError(t, err)
	assert.True(t, c.IsOrigin(), "center is %v", c)
	assert.InDelta(t, 10.0, r, eps)
}

func TestArcCenterRadiusDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := ArcCenterRadius(P(0, 0), P(1, 0), P(2, 0), "ERR807")
	if !errors.Is(err, cnc25d.ErrDegenerateArc) {
		t.Fatalf("expected ErrDegenerateArc, got %v", err)
	}
	label, _ := cnc25d.LabelOf(err)
	assert.Equal(t, "ERR807", label)
	_, _, err = ArcCenterRadius(P(0, 0), P(0, 0), P(2, 3), "ERR807")
	assert.ErrorIs(t, err, cnc25d.ErrDegenerateArc)
}

func TestArcDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ccw, err := ArcCenterRadiusAngles(P(10, 0), P(0, 10), P(-10, 0), "ERR101")
	require.NoError(t, err)
	assert.True(t, ccw.CCW())
	assert.InDelta(t, math.Pi, ccw.Sweep, eps)
	cw, err := ArcCenterRadiusAngles(P(-10, 0), P(0, 10), P(10, 0), "ERR101")
	require.NoError(t, err)
	assert.False(t, cw.CCW())
	assert.InDelta(t, -math.Pi, cw.Sweep, eps)
	// a short arc and its reversal
	a, err := ArcCenterRadiusAngles(P(10, 0), P(8, 6), P(6, 8), "ERR101")
	require.NoError(t, err)
	b, err := ArcCenterRadiusAngles(P(6, 8), P(8, 6), P(10, 0), "ERR101")
	require.NoError(t, err)
	assert.Greater(t, a.Sweep, 0.0)
	assert.InDelta(t, -a.Sweep, b.Sweep, 1e-9)
	// mid angle lies between start and end
	assert.True(t, a.StartAngle < a.MidAngle && a.MidAngle < a.EndAngle)
	assert.True(t, b.StartAngle > b.MidAngle && b.MidAngle > b.EndAngle)
}

func TestLineEquation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l, err := LineEquation(P(0, 0), P(10, 0), "ERR110")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, l.Length, 1e-12)
	assert.InDelta(t, 3.0, l.SignedDistance(P(5, 3)), 1e-12)
	assert.InDelta(t, -2.0, l.SignedDistance(P(-5, -2)), 1e-12)
	assert.Equal(t, 1, l.Side(P(1, 1)))
	assert.Equal(t, -1, l.Side(P(1, -1)))
	assert.Equal(t, 0, l.Side(P(20, 0)))
	assert.True(t, l.Foot(P(4, 7)).Equal(P(4, 0)))
	_, err = LineEquation(P(1, 1), P(1, 1), "ERR111")
	assert.ErrorIs(t, err, cnc25d.ErrDegenerateLine)
}

func TestLineDistancePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(1, 1), P(4, 5)
	f, k, err := LineDistancePoint(p, q, 2, "ERR112")
	require.NoError(t, err)
	l, _ := LineEquation(p, q, "ERR112")
	assert.InDelta(t, 2.0, l.SignedDistance(f), 1e-9)
	assert.InDelta(t, 2.0, p.Dist(f), 1e-9)
	shifted := l.Shifted(2)
	assert.InDelta(t, k, shifted.K, 1e-9)
	assert.InDelta(t, 0.0, shifted.SignedDistance(f), 1e-9)
}

func TestLineCircleIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l, err := LineEquation(P(-20, 0), P(20, 0), "ERR120")
	require.NoError(t, err)
	x, st := LineCircleIntersection(l, P(0, 0), 10, P(15, 0), 0, "ERR125")
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(10, 0)), "got %v", x)
	x, st = LineCircleIntersection(l, P(0, 0), 10, P(-15, 3), 0, "ERR125")
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(-10, 0)), "got %v", x)
	x, st = LineCircleIntersection(l, P(0, 6), 10, P(0, 0), -1, "ERR125")
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(-8, 0)), "got %v", x)
	// tangent
	tl, _ := LineEquation(P(0, 10), P(1, 10), "ERR120")
	x, st = LineCircleIntersection(tl, P(0, 0), 10, P(5, 10), 0, "ERR125")
	assert.Equal(t, cnc25d.Tangent, st)
	assert.True(t, x.Equal(P(0, 10)), "got %v", x)
	// miss
	ml, _ := LineEquation(P(0, 11), P(1, 11), "ERR120")
	_, st = LineCircleIntersection(ml, P(0, 0), 10, P(5, 11), 0, "ERR125")
	assert.Equal(t, cnc25d.Miss, st)
}

func TestWarningsReachDiagnostics(t *testing.T) {
	var diag bytes.Buffer
	untrace := cnc25d.TraceTo(&diag, tracing.LevelInfo)
	defer untrace()
	s := 5 * math.Sqrt2
	c, err := Triangulation(P(0, 0), s, P(10, 0), s, P(5, 0), 0, "ERR143")
	require.NoError(t, err)
	assert.True(t, c.Equal(P(5, 5)), "left side is the fallback, got %v", c)
	assert.Contains(t, diag.String(), "WARN ERR143 triangulation")
	//
	diag.Reset()
	l, err := LineEquation(P(-20, 0), P(20, 0), "ERR126")
	require.NoError(t, err)
	x, st := LineCircleIntersection(l, P(0, 3), 5, P(0, 0), 0, "ERR126")
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(4, 0)), "forward solution expected, got %v", x)
	assert.Contains(t, diag.String(), "WARN ERR126 line-circle")
	// failures are left to the caller and not reported at info level
	diag.Reset()
	_, err = Triangulation(P(0, 0), 1, P(10, 0), 1, P(5, 1), 0, "ERR144")
	assert.Error(t, err)
	assert.Empty(t, diag.String())
}

func TestLineLineIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, st, err := LineLineIntersection(P(0, 0), P(10, 10), P(0, 10), P(10, 0), "ERR130")
	require.NoError(t, err)
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(5, 5)), "got %v", x)
	x, st, err = LineLineIntersection(P(1, 2), P(3, 2), P(7, -1), P(7, 5), "ERR130")
	require.NoError(t, err)
	assert.Equal(t, cnc25d.OK, st)
	assert.True(t, x.Equal(P(7, 2)), "got %v", x)
	_, st, err = LineLineIntersection(P(0, 0), P(1, 0), P(0, 1), P(1, 1), "ERR130")
	require.NoError(t, err)
	assert.Equal(t, cnc25d.Miss, st)
	_, _, err = LineLineIntersection(P(0, 0), P(0, 0), P(0, 1), P(1, 1), "ERR131")
	assert.ErrorIs(t, err, cnc25d.ErrDegenerateLine)
}

func TestTriangulation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := 5 * math.Sqrt2
	c, err := Triangulation(P(0, 0), s, P(10, 0), s, P(5, 1), 0, "ERR140")
	require.NoError(t, err)
	assert.True(t, c.Equal(P(5, 5)), "got %v", c)
	c, err = Triangulation(P(0, 0), s, P(10, 0), s, P(5, -1), 0, "ERR140")
	require.NoError(t, err)
	assert.True(t, c.Equal(P(5, -5)), "got %v", c)
	// d on the base line, side taken from dirHint
	c, err = Triangulation(P(0, 0), s, P(10, 0), s, P(20, 0), -1, "ERR140")
	require.NoError(t, err)
	assert.True(t, c.Equal(P(5, -5)), "got %v", c)
	_, err = Triangulation(P(0, 0), 1, P(10, 0), 1, P(5, 1), 0, "ERR141")
	assert.ErrorIs(t, err, cnc25d.ErrTriangleInfeasible)
}

func TestTriangulationRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := P(-3, 2), P(12, 7)
	for _, c := range []cnc25d.Pair{P(4, 20), P(0, -8), P(30, 1), P(-10, 10)} {
		got, err := Triangulation(a, a.Dist(c), b, b.Dist(c), c, 0, "ERR142")
		require.NoError(t, err)
		assert.True(t, got.Equal(c), "expected %v, got %v", c, got)
	}
}

func TestSampleArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, m, c := P(10, 0), P(0, 10), P(-10, 0)
	pts, err := SampleArc(a, m, c, 3, "ERR150")
	require.NoError(t, err)
	assert.Equal(t, 17, len(pts))
	assert.Equal(t, a, pts[0])
	assert.Equal(t, c, pts[len(pts)-1])
	assert.Equal(t, m, pts[8])
	for _, p := range pts {
		assert.InDelta(t, 10.0, p.Abs(), eps)
	}
	for i := 1; i < len(pts); i++ { // counter-clockwise: angles increase
		assert.Greater(t, pts[i].Angle()+1e-9, pts[i-1].Angle())
	}
	finer, err := SampleArc(a, m, c, 12, "ERR150")
	require.NoError(t, err)
	assert.Greater(t, len(finer), len(pts))
}

func TestSampleArcClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, m, c := P(-10, 0), P(0, 10), P(10, 0)
	pts, err := SampleArc(a, m, c, 5, "ERR151")
	require.NoError(t, err)
	assert.Equal(t, a, pts[0])
	assert.Equal(t, c, pts[len(pts)-1])
	for i := 1; i < len(pts); i++ { // clockwise: angles decrease
		assert.Less(t, pts[i].Angle(), pts[i-1].Angle()+1e-9)
	}
}

func TestSampleArcBadResolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := SampleArc(P(10, 0), P(0, 10), P(-10, 0), 2, "ERR152")
	assert.ErrorIs(t, err, cnc25d.ErrBadResolution)
	_, err = SampleArc(P(0, 0), P(1, 0), P(2, 0), 10, "ERR153")
	assert.ErrorIs(t, err, cnc25d.ErrDegenerateArc)
}
