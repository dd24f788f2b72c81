package planar

import (
	"math"

	"github.com/npillmayer/cnc25d"
)

// MinResolution is the smallest accepted arc resolution.
const MinResolution = 3

// AngleStep is the angular step used for sampling an arc of radius r at the
// given resolution. Larger radii get finer steps, keeping the chordal error
// roughly proportional to 1/resolution.
func AngleStep(resolution int, r float64) float64 {
	return pi2 / (float64(resolution) * r)
}

// SampleArc converts the arc from a through m to c into a polyline.
// The polyline starts with a and ends with c exactly, and contains m.
// Between a and m (and between m and c) ⌊|θ|/Δθ⌋ interior points are inserted,
// evenly spread over the partial sweep θ, where Δθ is AngleStep(resolution, r).
// Traversal direction follows the arc direction.
//
// It fails with cnc25d.ErrBadResolution for resolutions below 3 and with the
// errors of ArcCenterRadiusAngles for degenerate arcs.
func SampleArc(a, m, c cnc25d.Pair, resolution int, label string) ([]cnc25d.Pair, error) {
	if resolution < MinResolution {
		return nil, cnc25d.Fail(label, cnc25d.ErrBadResolution,
			"resolution %d must be at least %d", resolution, MinResolution)
	}
	arc, err := ArcCenterRadiusAngles(a, m, c, label)
	if err != nil {
		return nil, err
	}
	step := AngleStep(resolution, arc.Radius)
	n1 := int(math.Abs(arc.MidAngle-arc.StartAngle) / step)
	n2 := int(math.Abs(arc.EndAngle-arc.MidAngle) / step)
	pts := make([]cnc25d.Pair, 0, n1+n2+3)
	pts = append(pts, a)
	pts = appendInterior(pts, arc, arc.StartAngle, arc.MidAngle, n1)
	pts = append(pts, m)
	pts = appendInterior(pts, arc, arc.MidAngle, arc.EndAngle, n2)
	pts = append(pts, c)
	tracer().Debugf("sampled %v with %d points (step %.4g rad)", arc, len(pts), step)
	return pts, nil
}

func appendInterior(pts []cnc25d.Pair, arc Arc, from, to float64, n int) []cnc25d.Pair {
	delta := (to - from) / float64(n+1)
	for i := 1; i <= n; i++ {
		pts = append(pts, arc.Point(from+float64(i)*delta))
	}
	return pts
}
